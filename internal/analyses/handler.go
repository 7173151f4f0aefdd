package analyses

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-relay/internal/normalize"
	"resume-relay/internal/shared/server/middleware"
	"resume-relay/internal/shared/server/respond"
	"resume-relay/internal/shared/util"
)

const resumeFileField = "resumeFile"

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyzeResume", h.analyzeText)
	rg.POST("/analyzeResumeFile", h.analyzeFile)
}

type analyzeTextRequest struct {
	ResumeText string `json:"resumeText"`
}

func (h *Handler) analyzeText(c *gin.Context) {
	middleware.SetOperation(c, string(normalize.OpAnalyzeText))
	h.limitBody(c)

	var req analyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isTooLarge(err) {
			respond.Error(c, http.StatusRequestEntityTooLarge, normalize.ErrorCodeInputTooLarge, "request body too large", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, normalize.ErrorCodeValidation, "invalid JSON body", nil)
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		respond.Error(c, http.StatusBadRequest, normalize.ErrorCodeValidation, "No resume text provided", []map[string]string{
			{"field": "resumeText", "issue": "required"},
		})
		return
	}

	out, err := h.Svc.AnalyzeText(c.Request.Context(), req.ResumeText)
	if err != nil {
		writeError(c, err, "AI analysis failed")
		return
	}
	middleware.SetResultSource(c, string(out.Source))
	respond.OK(c, out.Value)
}

func (h *Handler) analyzeFile(c *gin.Context) {
	middleware.SetOperation(c, string(normalize.OpAnalyzeFile))
	h.limitBody(c)

	file, header, err := c.Request.FormFile(resumeFileField)
	if err != nil {
		if isTooLarge(err) {
			respond.Error(c, http.StatusRequestEntityTooLarge, normalize.ErrorCodeInputTooLarge, "uploaded file too large", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, normalize.ErrorCodeValidation, "No file uploaded", []map[string]string{
			{"field": resumeFileField, "issue": "required"},
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, normalize.ErrorCodeValidation, "failed to read uploaded file", nil)
		return
	}

	// An unusable name only costs the extension hint; content sniffing still applies.
	fileName, err := util.SanitizeFileName(header.Filename)
	if err != nil {
		fileName = ""
	}

	out, err := h.Svc.AnalyzeFile(c.Request.Context(), data, header.Header.Get("Content-Type"), fileName)
	if err != nil {
		writeError(c, err, "File analysis failed")
		return
	}
	middleware.SetResultSource(c, string(out.Source))
	respond.OK(c, out.Value)
}

func (h *Handler) limitBody(c *gin.Context) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// writeError reports caller errors with their own message and hides provider
// and internal details behind failedMsg.
func writeError(c *gin.Context, err error, failedMsg string) {
	status, code := normalize.Classify(err)
	msg := failedMsg
	if status < http.StatusInternalServerError {
		msg = err.Error()
	}
	respond.Error(c, status, code, msg, nil)
}
