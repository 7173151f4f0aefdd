package translations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-relay/internal/normalize"
	"resume-relay/internal/shared/server/middleware"
	"resume-relay/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the translations service.
type Handler struct {
	Svc          *Service
	MaxBodyBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxBodyBytes int64) *Handler {
	return &Handler{Svc: svc, MaxBodyBytes: maxBodyBytes}
}

// RegisterRoutes attaches catalog and translation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/languages", h.listLanguages)
	rg.GET("/labels/:lang", h.translateLabels)
	rg.POST("/translateResume", h.translateResume)
}

func (h *Handler) listLanguages(c *gin.Context) {
	middleware.SetOperation(c, string(normalize.OpListLanguages))

	out, err := h.Svc.ListLanguages(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch languages")
		return
	}
	middleware.SetResultSource(c, string(out.Source))
	respond.OK(c, out.Value)
}

func (h *Handler) translateLabels(c *gin.Context) {
	middleware.SetOperation(c, string(normalize.OpTranslateLabels))

	out, err := h.Svc.TranslateLabels(c.Request.Context(), c.Param("lang"))
	if err != nil {
		writeError(c, err, "Failed to fetch translated labels")
		return
	}
	middleware.SetResultSource(c, string(out.Source))
	respond.OK(c, out.Value)
}

type translateResumeRequest struct {
	ResumeData map[string]any `json:"resumeData"`
	TargetLang string         `json:"targetLang"`
}

func (h *Handler) translateResume(c *gin.Context) {
	middleware.SetOperation(c, string(normalize.OpTranslateResume))
	if h.MaxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBodyBytes)
	}

	var req translateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, normalize.ErrorCodeInputTooLarge, "request body too large", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, normalize.ErrorCodeValidation, "resumeData must be a JSON object", nil)
		return
	}

	out, err := h.Svc.TranslateResume(c.Request.Context(), req.ResumeData, req.TargetLang)
	if err != nil {
		writeError(c, err, "Failed to fetch translated resume")
		return
	}
	middleware.SetResultSource(c, string(out.Source))
	respond.OK(c, out.Value)
}

func writeError(c *gin.Context, err error, failedMsg string) {
	status, code := normalize.Classify(err)
	msg := failedMsg
	if status < http.StatusInternalServerError {
		msg = err.Error()
	}
	respond.Error(c, status, code, msg, nil)
}
