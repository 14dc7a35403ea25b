package handlers

import (
	"net/http"

	"github.com/semhq/campaigner/internal/generator"
	"github.com/semhq/campaigner/internal/web"
	"github.com/semhq/campaigner/pkg/prompt"
	"github.com/semhq/campaigner/requests"
	"github.com/semhq/campaigner/views"
)

// Session keys for the last hashtag result.
const (
	keyHashtagDescription = "hashtag.description"
	keyHashtagHashtags    = "hashtag.hashtags"
)

// HashtagHandler serves the hashtag and description generator.
type HashtagHandler struct {
	gen *generator.Service
}

// NewHashtagHandler creates a hashtag handler.
func NewHashtagHandler(gen *generator.Service) *HashtagHandler {
	return &HashtagHandler{gen: gen}
}

// Routes declares the hashtag generator routes.
func (h *HashtagHandler) Routes(r web.Router) {
	r.Route("/hashtags", func(r web.Router) {
		r.GET("/", h.page)
		r.POST("/generate", h.generate)
	})
}

func (h *HashtagHandler) page(c web.Context) error {
	return c.Render(http.StatusOK, views.HashtagPage(views.HashtagView{
		Description: c.SessionValue(keyHashtagDescription),
		Hashtags:    c.SessionValue(keyHashtagHashtags),
	}))
}

func (h *HashtagHandler) generate(c web.Context) error {
	var req requests.GenerateHashtags
	errs, err := c.Bind(&req)
	if err != nil {
		return web.ErrBadRequest("Invalid form submission.", web.WithError(err))
	}

	v := views.HashtagView{
		Category:    req.Category,
		Audience:    orDefault(prompt.ParseAudience(req.Audience), prompt.Teenagers),
		Platform:    orDefault(prompt.ParsePlatform(req.Platform), prompt.Instagram),
		Tone:        orDefault(prompt.ParseTone(req.Tone), prompt.Formal),
		Purpose:     orDefault(prompt.ParsePurpose(req.Purpose), prompt.PromoteProduct),
		Description: c.SessionValue(keyHashtagDescription),
		Hashtags:    c.SessionValue(keyHashtagHashtags),
	}

	if len(errs) > 0 {
		v.Notice = views.Warning(errs.First())
		return c.RenderPartial(http.StatusUnprocessableEntity, views.HashtagPage(v), views.HashtagPanel(v))
	}

	res, err := h.gen.GenerateHashtags(c, generator.HashtagRequest{
		Category: req.Category,
		Audience: v.Audience,
		Platform: v.Platform,
		Tone:     v.Tone,
		Purpose:  v.Purpose,
	})
	if err != nil {
		c.LogWarn("hashtag generation failed", "error", err)
		v.Notice = views.Failure("Failed to generate hashtags and description: " + err.Error())
		return c.RenderPartial(http.StatusBadGateway, views.HashtagPage(v), views.HashtagPanel(v))
	}

	if err := c.SetSessionValues(map[string]string{
		keyHashtagDescription: res.Description,
		keyHashtagHashtags:    res.Hashtags,
	}); err != nil {
		c.LogError("failed to store hashtag result", "error", err)
	}

	v.Description = res.Description
	v.Hashtags = res.Hashtags
	v.Notice = views.Success("Generated successfully!")
	return c.RenderPartial(http.StatusOK, views.HashtagPage(v), views.HashtagPanel(v))
}
