// Package docbuzz turns documentation sites into promotional social-media
// posts. It crawls a docs site with bounded concurrency, extracts and
// classifies page content into a topic index, persists the index as a JSON
// snapshot, and generates short posts grounded in per-subtopic context via
// an LLM.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, gemini/, sqlite/).
package docbuzz
