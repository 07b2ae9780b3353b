package handlers

import "net/http"

// Landing is the public landing page.
func Landing(w http.ResponseWriter, r *http.Request) {
	render(w, "landing.html", nil)
}

// Gallery is the view shell for received moments; the page fetches its data
// from /api/moments.
func Gallery(w http.ResponseWriter, r *http.Request) {
	render(w, "gallery.html", nil)
}

// Stats is the view shell for user statistics; the page fetches its data
// from /api/stats.
func Stats(w http.ResponseWriter, r *http.Request) {
	render(w, "stats.html", nil)
}
