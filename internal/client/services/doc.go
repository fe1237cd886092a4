// Package services holds the page controllers of the admin console.
//
// Each controller owns one view (a comment section, an admin table or the
// dashboard), fetches its data through a client.Client and pushes the
// rendered tree to a Display. Controllers are fail-soft: a failed fetch or
// mutation is logged and returned, and the view that was last shown stays
// on screen. A successful mutation triggers exactly one reload.
//
// Mutations always ask first. The question goes through a Confirmer and a
// declined question sends no request.
package services
