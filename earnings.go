// Package earnings provides a client for an earnings-call transcript
// service: it triggers transcript ingestion, lists and views transcripts,
// runs full-text search and asks retrieval-augmented questions, and renders
// the answers (including inline chunk citations) as safe HTML.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/, glamour/).
package earnings
