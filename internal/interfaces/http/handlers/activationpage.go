package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/shared/id"
)

//go:embed templates/activation.html
var templateFS embed.FS

var activationTemplate = template.Must(template.ParseFS(templateFS, "templates/activation.html"))

// Activation attempts are staggered so that whichever technique the platform
// honours wins before the manual link shows up.
const (
	activationNavigateAfter = 100 * time.Millisecond
	activationFrameAfter    = 400 * time.Millisecond
	activationClickAfter    = 800 * time.Millisecond
	activationManualAfter   = 2 * time.Second
)

type activationView struct {
	Nonce           string
	Target          template.URL
	NavigateAfterMs int64
	FrameAfterMs    int64
	ClickAfterMs    int64
	ManualAfterMs   int64
}

// renderActivationPage writes the page under a CSP that only admits the
// inline script and style carrying this response's nonce.
func renderActivationPage(c *gin.Context, target string) error {
	nonce, err := id.Generate(24)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = activationTemplate.Execute(&buf, activationView{
		Nonce:           nonce,
		Target:          template.URL(target),
		NavigateAfterMs: activationNavigateAfter.Milliseconds(),
		FrameAfterMs:    activationFrameAfter.Milliseconds(),
		ClickAfterMs:    activationClickAfter.Milliseconds(),
		ManualAfterMs:   activationManualAfter.Milliseconds(),
	})
	if err != nil {
		return err
	}

	c.Header("Content-Security-Policy",
		"default-src 'none'; script-src 'nonce-"+nonce+"'; style-src 'nonce-"+nonce+"'; frame-src *; base-uri 'none'; form-action 'none'")
	c.Header("Cache-Control", "no-store")
	c.Header("Referrer-Policy", "no-referrer")
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	return nil
}
