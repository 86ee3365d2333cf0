package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/brief"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/campaign"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/export"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/flow"
	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/models"
)

// GenerateResponse is the result of POST /campaigns.
type GenerateResponse struct {
	Campaign *models.Campaign `json:"campaign"`
	Preview  campaign.Preview `json:"preview"`
	Metrics  campaign.Metrics `json:"metrics"`
	Quality  campaign.Quality `json:"quality"`
}

// FlowRequest is the body of POST /flows.
type FlowRequest struct {
	CampaignType models.CampaignType  `json:"campaign_type"`
	Emails       []models.ContentItem `json:"emails"`
	SMSMessages  []models.ContentItem `json:"sms_messages"`
}

func (s *Server) generateCampaignHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	slog.Debug("Server.generateCampaignHandler: processing generate request", "path", r.URL.Path)

	var req campaign.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		slog.Warn("Server.generateCampaignHandler: failed to decode JSON", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Invalid JSON format"))
		return
	}

	c, err := s.campaigns.Generate(r.Context(), req)
	if err != nil {
		var verr *brief.ValidationError
		if errors.As(err, &verr) {
			slog.Warn("Server.generateCampaignHandler: brief rejected", "reason", verr.Reason)
			writeJSONResponse(w, http.StatusBadRequest, models.Rejected(verr.Reason))
			return
		}
		slog.Error("Server.generateCampaignHandler: generation failed", "error", err)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to generate campaign"))
		return
	}

	writeJSONResponse(w, http.StatusOK, models.Success(GenerateResponse{
		Campaign: c,
		Preview:  campaign.NewPreview(c),
		Metrics:  campaign.ComputeMetrics(c),
		Quality:  campaign.LintCampaign(c),
	}))
}

func (s *Server) exportCampaignHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		slog.Warn("Server.exportCampaignHandler: bad format", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error(err.Error()))
		return
	}

	var c models.Campaign
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxExportBytes)).Decode(&c); err != nil {
		slog.Warn("Server.exportCampaignHandler: failed to decode JSON", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Invalid JSON format"))
		return
	}

	data, err := s.exporter.Export(&c, format)
	if err != nil {
		slog.Error("Server.exportCampaignHandler: export failed", "error", err, "format", format)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to export campaign"))
		return
	}
	slog.Info("Server.exportCampaignHandler: campaign exported", "id", c.ID, "format", format, "bytes", len(data))
	writeFile(w, format.ContentType(), s.exporter.Filename(&c, format), data)
}

func (s *Server) buildFlowHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req FlowRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		slog.Warn("Server.buildFlowHandler: failed to decode JSON", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Invalid JSON format"))
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(flow.BuildFlow(req.Emails, req.SMSMessages, req.CampaignType)))
}

func (s *Server) exportTemplateHandler(w http.ResponseWriter, r *http.Request) {
	data, err := export.ImportTemplate()
	if err != nil {
		slog.Error("Server.exportTemplateHandler: failed to build template", "error", err)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to build template"))
		return
	}
	writeFile(w, export.FormatJSON.ContentType(), "campaign_template.json", data)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, models.Success(map[string]string{"service": "marketing-agent"}))
}
