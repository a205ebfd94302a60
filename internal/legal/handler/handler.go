package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ibradi0157/mon-blog/internal/legal"
	"github.com/ibradi0157/mon-blog/internal/legal/service"
	"github.com/ibradi0157/mon-blog/pkg/logger"
	"github.com/ibradi0157/mon-blog/pkg/metrics"
)

// publicPage is what anonymous readers get: no storage identity.
type publicPage struct {
	Slug      legal.Slug `json:"slug"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toPublic(p *legal.Page) publicPage {
	return publicPage{Slug: p.Slug, Title: p.Title, Body: p.Body, UpdatedAt: p.UpdatedAt}
}

type upsertRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}

type publishRequest struct {
	Published *bool `json:"published" binding:"required"`
}

// RegisterPublicRoutes mounts the read-only routes for site visitors.
func RegisterPublicRoutes(rg *gin.RouterGroup, svc service.Service) {
	g := rg.Group("/legal-pages")

	g.GET("", func(c *gin.Context) {
		pages, err := svc.GetPublicAll(c.Request.Context())
		if err != nil {
			fail(c, "public", err)
			return
		}
		out := make([]publicPage, 0, len(pages))
		for _, p := range pages {
			out = append(out, toPublic(p))
		}
		c.JSON(http.StatusOK, out)
	})

	// Unknown slugs are not rejected up front; they come back as not found.
	g.GET("/:slug", func(c *gin.Context) {
		p, err := svc.GetPublicBySlug(c.Request.Context(), legal.Slug(c.Param("slug")))
		if err != nil {
			fail(c, "public", err)
			return
		}
		c.JSON(http.StatusOK, toPublic(p))
	})
}

// RegisterAdminRoutes mounts the privileged routes. Callers put the
// authentication middleware on rg.
func RegisterAdminRoutes(rg *gin.RouterGroup, svc service.Service) {
	g := rg.Group("/legal-pages")

	g.GET("", func(c *gin.Context) {
		pages, err := svc.GetAll(c.Request.Context())
		if err != nil {
			fail(c, "admin", err)
			return
		}
		c.JSON(http.StatusOK, pages)
	})

	g.GET("/:slug", withSlug(func(c *gin.Context, slug legal.Slug) {
		p, err := svc.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			fail(c, "admin", err)
			return
		}
		c.JSON(http.StatusOK, p)
	}))

	g.PUT("/:slug", withSlug(func(c *gin.Context, slug legal.Slug) {
		var req upsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		content := legal.Content{Title: req.Title, Body: req.Body}.Normalize()
		if err := content.Validate(); err != nil {
			fail(c, "admin", err)
			return
		}
		p, err := svc.Upsert(c.Request.Context(), slug, content)
		if err != nil {
			fail(c, "admin", err)
			return
		}
		metrics.LegalPageWrites.WithLabelValues("upsert").Inc()
		logger.Infow("legal page saved", "slug", string(slug), "published", p.Published)
		c.JSON(http.StatusOK, p)
	}))

	g.PATCH("/:slug/publish", withSlug(func(c *gin.Context, slug legal.Slug) {
		var req publishRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, err := svc.SetPublished(c.Request.Context(), slug, *req.Published)
		if err != nil {
			fail(c, "admin", err)
			return
		}
		metrics.LegalPageWrites.WithLabelValues("publish").Inc()
		logger.Infow("legal page publish state changed", "slug", string(slug), "published", p.Published)
		c.JSON(http.StatusOK, p)
	}))
}

// withSlug rejects slugs outside the catalog before reaching the service.
func withSlug(h func(*gin.Context, legal.Slug)) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug, err := legal.ParseSlug(c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "allowed": legal.Slugs()})
			return
		}
		h(c, slug)
	}
}

// fail maps service errors onto HTTP responses.
func fail(c *gin.Context, audience string, err error) {
	var (
		nf   *legal.NotFoundError
		verr *legal.ValidationError
	)
	switch {
	case errors.As(err, &nf):
		metrics.LegalPageNotFound.WithLabelValues(audience).Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": legal.ErrNotFound.Error(), "slug": nf.Slug})
	case errors.Is(err, legal.ErrNotFound):
		metrics.LegalPageNotFound.WithLabelValues(audience).Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": legal.ErrNotFound.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	default:
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
