package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/ganttgrid/ganttgrid/pkg/cache"
	"github.com/ganttgrid/ganttgrid/pkg/errors"
	"github.com/ganttgrid/ganttgrid/pkg/gantt"
	"github.com/ganttgrid/ganttgrid/pkg/render/grid"
	"github.com/ganttgrid/ganttgrid/pkg/render/grid/sink"
	"github.com/ganttgrid/ganttgrid/pkg/source/table"
)

// maxBodyBytes bounds request bodies; task tables are small.
const maxBodyBytes = 1 << 20

// chartRequest is the rendering request payload.
type chartRequest struct {
	Tasks   []taskPayload `json:"tasks"`
	Options table.Options `json:"options"`
	Format  string        `json:"format"`
}

type taskPayload struct {
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Duration    int    `json:"duration"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "failed to read request body"))
		return
	}

	var req chartRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeSchema, err, "invalid request body"))
		return
	}
	format := req.Format
	if format == "" {
		format = sink.FormatSVG
	}

	// Identical bodies render identical artifacts.
	key := cache.ArtifactKey(format, body)
	if artifact, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		s.logger.Debug("cache hit", "key", key)
		writeArtifact(w, format, artifact)
		return
	}

	artifact, err := renderChart(req, format)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, artifact, s.ttl); err != nil {
		s.logger.Warn("cache store failed", "key", key, "err", err)
	}
	writeArtifact(w, format, artifact)
}

// renderChart runs the full pipeline: validate, build axis, resolve, draw.
func renderChart(req chartRequest, format string) ([]byte, error) {
	tasks := make([]gantt.Task, 0, len(req.Tasks))
	for _, p := range req.Tasks {
		t, err := taskFromPayload(p)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if len(tasks) == 0 {
		return nil, errors.New(errors.ErrCodeSchema, "task table is empty")
	}

	policy, err := req.Options.Policy()
	if err != nil {
		return nil, err
	}
	axis, err := gantt.AxisForTasks(tasks, policy)
	if err != nil {
		return nil, err
	}
	placements, err := gantt.Resolve(tasks, axis)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	renderer, err := sink.New(format, &buf)
	if err != nil {
		return nil, err
	}
	if err := grid.Draw(axis, placements, renderer, req.Options.GridOptions()...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func taskFromPayload(p taskPayload) (gantt.Task, error) {
	if p.Start == "" || p.End == "" {
		return gantt.Task{}, errors.New(errors.ErrCodeSchema,
			"task %q has a missing date", p.Description)
	}
	start, err := gantt.ParseDate(p.Start)
	if err != nil {
		return gantt.Task{}, errors.Wrap(errors.ErrCodeSchema, err, "task %q", p.Description)
	}
	end, err := gantt.ParseDate(p.End)
	if err != nil {
		return gantt.Task{}, errors.Wrap(errors.ErrCodeSchema, err, "task %q", p.Description)
	}

	t := gantt.Task{Description: p.Description, Start: start, End: end, Duration: p.Duration}
	if err := t.Validate(); err != nil {
		return gantt.Task{}, err
	}
	return t, nil
}

func writeArtifact(w http.ResponseWriter, format string, artifact []byte) {
	w.Header().Set("Content-Type", sink.ContentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact)
}

// writeError maps error codes to HTTP statuses: validation problems are the
// client's fault, everything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeSchema, errors.ErrCodeInvalidPolicy, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidDate, errors.ErrCodeDateOffAxis, errors.ErrCodeEmptyAxis:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}
