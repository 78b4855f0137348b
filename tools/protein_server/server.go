// Package protein_server serves the protein classification form and its JSON API.
package protein_server

import (
	"embed"
	"encoding/base64"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	pc "prot_classifier_go/tools/protein_classifier"
)

//go:embed templates
var templateFS embed.FS

// Server holds the loaded model and the class catalogue shown on the page.
type Server struct {
	svc     *pc.Service
	classes []string
	log     *slog.Logger
}

// page is the data rendered by templates/index.html.
type page struct {
	Classes       []string
	Presets       []string
	Selected      int
	Text          string
	TextMessage   string
	PresetMessage string
	Result        *pc.Report
	Chart         template.URL
}

// predictRequest is the body of POST /api/predict. Exactly one field is set.
type predictRequest struct {
	Sequence *string `json:"sequence"`
	Preset   *int    `json:"preset"`
}

func NewServer(svc *pc.Service, classes []string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, classes: classes, log: logger}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"join":    strings.Join,
		"percent": func(p float64) string { return strconv.FormatFloat(pc.RoundPercent(p), 'f', 2, 64) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(requestLogger(s.log), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.GET("/", s.IndexHandler)
	r.POST("/predict", s.FormPredictHandler)
	r.GET("/health", HealthHandler)

	api := r.Group("/api")
	api.POST("/predict", s.PredictHandler)
	api.GET("/presets", PresetsHandler)
	api.GET("/classes", s.ClassesHandler)
	return r, nil
}

func (s *Server) newPage() page {
	return page{Classes: s.classes, Presets: pc.Presets}
}

// IndexHandler renders the empty form.
func (s *Server) IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.newPage())
}

// FormPredictHandler handles either Predict button. Input problems are shown
// under the control that submitted them instead of a result.
func (s *Server) FormPredictHandler(c *gin.Context) {
	p := s.newPage()

	var req pc.Request
	switch c.PostForm("mode") {
	case "preset":
		idx, err := strconv.Atoi(c.PostForm("preset"))
		if err != nil {
			idx = -1
		}
		p.Selected = idx
		req = pc.PresetChoice(idx)
	default:
		p.Text = c.PostForm("sequence")
		req = pc.FreeText(p.Text)
	}

	rep, err := s.svc.Classify(req)
	if err != nil {
		msg := pc.UserMessage(err)
		if msg == "" {
			s.log.Error("classification failed", "request_id", c.GetString(requestIDKey), "err", err)
			c.String(http.StatusInternalServerError, "classification failed")
			return
		}
		if req.Source == pc.SourcePreset {
			p.PresetMessage = msg
		} else {
			p.TextMessage = msg
		}
		c.HTML(http.StatusOK, "index.html", p)
		return
	}

	s.logDegenerate(c, rep)
	p.Result = rep
	svg, err := pc.FrequencyChartSVG(rep.Frequencies)
	if err != nil {
		s.log.Warn("frequency chart failed", "request_id", c.GetString(requestIDKey), "err", err)
	} else {
		p.Chart = template.URL("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg)))
	}
	c.HTML(http.StatusOK, "index.html", p)
}

// PredictHandler is the JSON counterpart of the form.
func (s *Server) PredictHandler(c *gin.Context) {
	var body predictRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}
	if (body.Sequence == nil) == (body.Preset == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": `provide exactly one of "sequence" or "preset"`})
		return
	}

	var req pc.Request
	if body.Sequence != nil {
		req = pc.FreeText(*body.Sequence)
	} else {
		req = pc.PresetChoice(*body.Preset)
	}

	rep, err := s.svc.Classify(req)
	if err != nil {
		if pc.IsInputError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "message": pc.UserMessage(err)})
			return
		}
		s.log.Error("classification failed", "request_id", c.GetString(requestIDKey), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "classification failed"})
		return
	}
	s.logDegenerate(c, rep)
	c.JSON(http.StatusOK, rep)
}

func (s *Server) logDegenerate(c *gin.Context, rep *pc.Report) {
	if rep.KmerFeatures == 0 {
		s.log.Debug("no vocabulary k-mers in sequence", "request_id", c.GetString(requestIDKey), "length", len(rep.Normalized))
	}
}

// PresetsHandler lists the example sequences in dropdown order.
func PresetsHandler(c *gin.Context) {
	type preset struct {
		Index    int    `json:"index"`
		Length   int    `json:"length"`
		Sequence string `json:"sequence"`
	}
	out := make([]preset, len(pc.Presets))
	for i, seq := range pc.Presets {
		out[i] = preset{Index: i, Length: len(seq), Sequence: seq}
	}
	c.JSON(http.StatusOK, out)
}

// ClassesHandler lists the protein classes known to the model.
func (s *Server) ClassesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": len(s.classes), "classes": s.classes})
}

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
