package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Keyroamos/hunt/internal/services"
	"github.com/Keyroamos/hunt/internal/utils"
)

// Placeholder tags the SPA build ships with; swapped per-listing so link
// previews show the property instead of the generic site card.
const (
	defaultOGTitle       = `<meta property="og:title" content="House Hunt Kenya">`
	defaultOGDescription = `<meta property="og:description" content="Find your next rental home in Kenya.">`
	defaultOGImage       = `<meta property="og:image" content="/og-default.png">`
)

type FrontendController struct {
	staticDir      string
	listingService services.ListingService
}

func NewFrontendController(staticDir string, listingService services.ListingService) *FrontendController {
	return &FrontendController{staticDir: staticDir, listingService: listingService}
}

// ServeSPA serves the single-page app. Static assets are served as-is;
// every other path falls through to index.html so client-side routing
// works, with OG tags rewritten for property detail pages.
func (c *FrontendController) ServeSPA(w http.ResponseWriter, r *http.Request) {
	reqPath := filepath.Clean(r.URL.Path)

	if reqPath != "/" && reqPath != "/index.html" {
		candidate := filepath.Join(c.staticDir, reqPath)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			http.ServeFile(w, r, candidate)
			return
		}
	}

	index, err := os.ReadFile(filepath.Join(c.staticDir, "index.html"))
	if err != nil {
		utils.Logger.WithError(err).Error("index.html missing from static dir")
		http.NotFound(w, r)
		return
	}

	html := string(index)
	if idOrSlug, ok := propertyPathID(reqPath); ok {
		html = c.injectListingOGTags(r, html, idOrSlug)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// propertyPathID extracts the id-or-slug from /property/... paths.
func propertyPathID(reqPath string) (string, bool) {
	parts := strings.Split(strings.Trim(reqPath, "/"), "/")
	if len(parts) == 2 && parts[0] == "property" && parts[1] != "" {
		return parts[1], true
	}
	return "", false
}

func (c *FrontendController) injectListingOGTags(r *http.Request, html, idOrSlug string) string {
	l, err := c.listingService.GetByIDOrSlug(r.Context(), idOrSlug)
	if err != nil || l == nil || !l.IsPublished {
		return html
	}

	title := fmt.Sprintf(`<meta property="og:title" content="%s">`, htmlAttrEscape(l.Title))
	desc := fmt.Sprintf(`<meta property="og:description" content="%s - KES %.0f/month">`,
		htmlAttrEscape(l.Location), l.RentPerMonth)
	html = strings.Replace(html, defaultOGTitle, title, 1)
	html = strings.Replace(html, defaultOGDescription, desc, 1)

	if imgs, imgErr := c.listingService.Images(r.Context(), l.ID); imgErr == nil {
		for _, img := range imgs {
			if img.IsPrimary {
				image := fmt.Sprintf(`<meta property="og:image" content="%s">`, htmlAttrEscape(img.ImageURL))
				html = strings.Replace(html, defaultOGImage, image, 1)
				break
			}
		}
	}
	return html
}

func htmlAttrEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}
