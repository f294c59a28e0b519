// Package web hosts the browser-facing offer builder: public pages and auth,
// the dashboard, the creation wizard and the offer editor. Offers live in the
// REST backend; this process keeps only sessions and in-progress drafts.
package web
