package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/sixdegrees/core"
	"github.com/katalvlaran/sixdegrees/separation"
)

// ErrEmptyInput is reported when a required actor name is blank.
var ErrEmptyInput = errors.New("server: empty input")

// maxRandom caps /v1/actors/random?n=.
const maxRandom = 100

// Error codes and messages carried in ErrorResponse.
const (
	codeEmptyInput   = "EMPTY_INPUT"
	codeInvalid      = "INVALID_REQUEST"
	codeNotFound     = "ACTOR_NOT_FOUND"
	codeNoPath       = "NO_PATH"
	codeInternal     = "INTERNAL"
	msgCheckSpelling = "actor not found, check spelling"
	msgNoConnection  = "no connection found"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDCtxKey = "request_id"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the body of /v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// PathResponse is the body of /v1/path.
type PathResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	*separation.Path
}

// RandomResponse is the body of /v1/actors/random.
type RandomResponse struct {
	Actors []string `json:"actors"`
}

// requestID echoes or assigns X-Request-ID.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Set(requestIDCtxKey, id)
		c.Next()
	}
}

func (s *Server) requestLogger(c *gin.Context, handler string) *slog.Logger {
	return s.logger.With("request_id", c.GetString(requestIDCtxKey), "handler", handler)
}

// handleHealth: GET /v1/health.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

// handleStats: GET /v1/stats.
func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Summary())
}

// handlePath answers GET /v1/path?from=A&to=B.
//
// Response:
//
//	200 OK: PathResponse
//	400 Bad Request: from or to blank
//	404 Not Found: unknown actor, or no connection
func (s *Server) handlePath(c *gin.Context) {
	logger := s.requestLogger(c, "path")
	start := time.Now()

	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		s.fail(c, logger, "path", fmt.Errorf("%w: from and to are required", ErrEmptyInput))
		return
	}

	p, err := separation.ShortestActorPath(s.graph(), from, to,
		separation.WithContext(c.Request.Context()))
	s.metrics.duration.WithLabelValues("path").Observe(time.Since(start).Seconds())
	if err != nil {
		s.fail(c, logger, "path", err)
		return
	}

	s.metrics.queries.WithLabelValues("path", outcomeOK).Inc()
	logger.Debug("path found", "from", from, "to", to, "degree", p.Degree)
	c.JSON(http.StatusOK, PathResponse{From: from, To: to, Path: p})
}

// handleDistribution answers GET /v1/distribution?actor=A[&bins=N].
// Buckets are padded to bins (default Options.Bins).
func (s *Server) handleDistribution(c *gin.Context) {
	logger := s.requestLogger(c, "distribution")
	start := time.Now()

	actor := strings.TrimSpace(c.Query("actor"))
	if actor == "" {
		s.fail(c, logger, "distribution", fmt.Errorf("%w: actor is required", ErrEmptyInput))
		return
	}
	bins, err := intQuery(c, "bins", s.opts.Bins, 1, 1000)
	if err != nil {
		s.fail(c, logger, "distribution", err)
		return
	}

	d, err := separation.DistanceDistribution(s.graph(), actor,
		separation.WithContext(c.Request.Context()),
		separation.WithMaxDegree(s.opts.MaxDegree))
	s.metrics.duration.WithLabelValues("distribution").Observe(time.Since(start).Seconds())
	if err != nil {
		s.fail(c, logger, "distribution", err)
		return
	}

	d.Buckets = d.Padded(bins)
	s.metrics.queries.WithLabelValues("distribution", outcomeOK).Inc()
	c.JSON(http.StatusOK, d)
}

// handleRandomActors answers GET /v1/actors/random[?n=N], default 2.
func (s *Server) handleRandomActors(c *gin.Context) {
	logger := s.requestLogger(c, "random")

	n, err := intQuery(c, "n", 2, 1, maxRandom)
	if err != nil {
		s.fail(c, logger, "random", err)
		return
	}

	s.metrics.queries.WithLabelValues("random", outcomeOK).Inc()
	c.JSON(http.StatusOK, RandomResponse{Actors: s.sample(n)})
}

func (s *Server) graph() *core.Graph { return s.catalog.Graph }

// errInvalidParam marks malformed numeric query parameters.
var errInvalidParam = errors.New("server: invalid parameter")

// intQuery parses an optional integer parameter within [lo, hi].
func intQuery(c *gin.Context, key string, def, lo, hi int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("%w: %s must be an integer in [%d, %d], got %q", errInvalidParam, key, lo, hi, raw)
	}
	return v, nil
}

// fail maps err to a status, records the outcome and writes ErrorResponse.
func (s *Server) fail(c *gin.Context, logger *slog.Logger, op string, err error) {
	status, resp, outcome := classify(err)
	s.metrics.queries.WithLabelValues(op, outcome).Inc()

	if status >= http.StatusInternalServerError {
		logger.Error("query failed", "error", err)
	} else {
		logger.Info("query rejected", "status", status, "error", err)
	}
	c.JSON(status, resp)
}

func classify(err error) (int, ErrorResponse, string) {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return http.StatusBadRequest, ErrorResponse{Error: "actor names must not be empty", Code: codeEmptyInput}, outcomeBadInput
	case errors.Is(err, errInvalidParam), errors.Is(err, separation.ErrOptionViolation):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: codeInvalid}, outcomeBadInput
	case errors.Is(err, separation.ErrNodeNotFound):
		return http.StatusNotFound, ErrorResponse{Error: msgCheckSpelling + ": " + err.Error(), Code: codeNotFound}, outcomeNotFound
	case errors.Is(err, separation.ErrNoPath):
		return http.StatusNotFound, ErrorResponse{Error: msgNoConnection, Code: codeNoPath}, outcomeNoPath
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: codeInternal}, outcomeError
	}
}
