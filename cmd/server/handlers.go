package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/examcoach-ai/coach-server/internal/analysis"
	"github.com/examcoach-ai/coach-server/internal/coach"
	"github.com/examcoach-ai/coach-server/internal/importer"
	"github.com/examcoach-ai/coach-server/internal/ocr"
	"github.com/examcoach-ai/coach-server/internal/omr"
	"github.com/examcoach-ai/coach-server/internal/platform/cache"
	"github.com/examcoach-ai/coach-server/internal/platform/database"
)

// maxUploadBytes bounds OCR image and spreadsheet uploads.
const maxUploadBytes = 10 << 20

type server struct {
	engine    *coach.Engine
	db        *database.DB
	cache     *cache.Cache
	reportTTL time.Duration
	extractor ocr.Extractor
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /plan", s.handlePlan)
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /chat/ws", s.handleChatWS)
	mux.HandleFunc("POST /ocr", s.handleOCR)
	mux.HandleFunc("POST /agent/analyze", s.handleAgentAnalyze)
	mux.HandleFunc("POST /import/questions", s.handleImportQuestions)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if s.db != nil {
		if err := s.db.HealthCheck(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	if s.cache != nil {
		if err := s.cache.HealthCheck(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, "cache unavailable")
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

// topicsRequest is the lightweight payload shared by /analyze and
// /plan: pre-aggregated per-topic scores.
type topicsRequest struct {
	Exam   string                `json:"exam"`
	Topics []analysis.TopicScore `json:"topics"`
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req topicsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	slog.Info("analyze request", "exam", req.Exam, "topics", len(req.Topics))
	writeJSON(w, http.StatusOK, s.engine.SummarizeTopics(req.Topics))
}

func (s *server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req topicsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	summary := s.engine.SummarizeTopics(req.Topics)
	weakNames := make([]string, 0, len(summary.WeakTopics))
	for _, t := range summary.WeakTopics {
		weakNames = append(weakNames, t.Name)
	}

	slog.Info("plan request", "exam", req.Exam, "weak_topics", len(weakNames))
	days := s.engine.GeneratePlan(r.Context(), req.Exam, weakNames)
	writeJSON(w, http.StatusOK, map[string]any{"plan": days})
}

type chatRequest struct {
	Message    string   `json:"message"`
	WeakTopics []string `json:"weak_topics,omitempty"`
}

func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := s.engine.Chat(r.Context(), req.Message, req.WeakTopics)
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// handleChatWS serves the same coach chat over a websocket: one text
// message in, one reply out, until the client closes.
func (s *server) handleChatWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "closing")

	ctx := r.Context()
	for {
		var req chatRequest
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			var closeErr websocket.CloseError
			if !errors.As(err, &closeErr) && ctx.Err() == nil {
				slog.Warn("websocket read failed", "error", err)
			}
			return
		}
		if msgType != websocket.MessageText || json.Unmarshal(data, &req) != nil || req.Message == "" {
			// Treat non-JSON frames as the message itself.
			req = chatRequest{Message: string(data)}
		}

		reply := s.engine.Chat(ctx, req.Message, req.WeakTopics)
		payload, _ := json.Marshal(map[string]string{"reply": reply})
		if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
			slog.Warn("websocket write failed", "error", err)
			return
		}
	}
}

func (s *server) handleOCR(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		writeError(w, http.StatusServiceUnavailable, "OCR service not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file upload is required")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading upload")
		return
	}

	examType := r.FormValue("exam_type")
	if examType == "" {
		examType = coach.DefaultExamType
	}

	text, err := s.extractor.Extract(r.Context(), image)
	if err != nil {
		slog.Error("OCR extraction failed", "error", err)
		writeError(w, http.StatusBadGateway, "OCR extraction failed")
		return
	}

	answers := omr.ParseAnswers(text)
	score := omr.Score(answers, omr.DemoAnswerKey())

	slog.Info("OCR processed", "answers", len(answers), "score", score.Score)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"extracted_text":  text,
		"answers":         answers,
		"total_questions": len(answers),
		"score":           score,
		"exam_type":       examType,
		"message":         fmt.Sprintf("Extracted %d answers from image", len(answers)),
	})
}

// agentRequest is the full-analysis payload. Clients either send raw
// question results or the same pre-aggregated topics as /analyze, in
// which case representative questions are synthesized.
type agentRequest struct {
	coach.AnalyzeRequest
	Exam   string                `json:"exam,omitempty"`
	Topics []analysis.TopicScore `json:"topics,omitempty"`
}

func (s *server) handleAgentAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading request body")
		return
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey = cache.ReportKey(body)
		if cached, err := s.cache.GetReport(r.Context(), cacheKey); err == nil {
			slog.Info("serving cached report", "key", cacheKey)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		} else if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("report cache get failed", "error", err)
		}
	}

	var req agentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Questions) == 0 && len(req.Topics) > 0 {
		req.Questions = coach.SynthesizeQuestions(req.Topics)
		if req.ExamType == "" {
			req.ExamType = req.Exam
		}
	}

	report := s.engine.AnalyzeAndPlan(r.Context(), &req.AnalyzeRequest)

	if s.cache != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(report); err == nil {
			if err := s.cache.SetReport(r.Context(), cacheKey, buf.Bytes(), s.reportTTL); err != nil {
				slog.Warn("report cache set failed", "error", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *server) handleImportQuestions(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file upload is required")
		return
	}
	defer file.Close()

	result, err := importer.ParseQuestions(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parsing workbook: %v", err))
		return
	}

	slog.Info("questions imported", "imported", result.Imported, "skipped", result.Skipped)

	report := s.engine.AnalyzeAndPlan(r.Context(), &coach.AnalyzeRequest{
		StudentName: r.FormValue("student_name"),
		ExamType:    r.FormValue("exam_type"),
		MockTestID:  r.FormValue("mock_test_id"),
		Questions:   result.Questions,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"import": result,
		"report": report,
	})
}
