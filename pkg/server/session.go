package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	ierrors "github.com/ecolab-dev/ecolab/internal/errors"
	"github.com/ecolab-dev/ecolab/pkg/app"
	"github.com/ecolab-dev/ecolab/pkg/reactive"
)

// maxFrameBytes bounds a single client frame. Parameter events are tiny;
// anything larger is malformed or hostile.
const maxFrameBytes = 4 * 1024

// Session is one WebSocket connection driving one app instance. The app's
// input state and derivation nodes belong exclusively to this session.
type Session struct {
	id     string
	app    app.App
	conn   *websocket.Conn
	logger *slog.Logger

	// ctx is the connection's context; event spans are rooted in it so
	// they join whatever trace the connection arrived with.
	ctx context.Context

	metrics *Metrics
	tracer  trace.Tracer

	// writeMu serializes conn writes: the read loop and the eviction
	// path may both write.
	writeMu sync.Mutex

	// lastActive is the unix-nano timestamp of the last client frame.
	lastActive atomic.Int64

	// lastRecomputes is the previous per-node computation snapshot,
	// used to export recompute deltas as counters.
	lastRecomputes map[string]uint64

	closeOnce sync.Once
	onClose   func(*Session)
}

// newSessionID returns a 128-bit random hex identifier.
func newSessionID() string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("server: session id entropy unavailable: " + err.Error())
	}
	return hex.EncodeToString(buf[:])
}

func newSession(ctx context.Context, a app.App, conn *websocket.Conn, logger *slog.Logger, m *Metrics, tracer trace.Tracer) *Session {
	s := &Session{
		id:             newSessionID(),
		app:            a,
		conn:           conn,
		ctx:            ctx,
		metrics:        m,
		tracer:         tracer,
		lastRecomputes: make(map[string]uint64),
	}
	s.logger = logger.With("session", s.id[:8], "app", a.Name())
	s.touch()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// touch records client activity for idle eviction.
func (s *Session) touch() {
	s.lastActive.Store(time.Now().UnixNano())
}

// idleSince returns how long ago the client was last active.
func (s *Session) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastActive.Load()))
}

// run sends the greeting and initial scenes, then serves client frames
// until the connection closes. Blocks; call from the connection handler.
func (s *Session) run() {
	defer s.Close()

	// Renders on this goroutine register a tracking context in the
	// reactive registry; drop it on exit.
	defer reactive.ReleaseContext()

	if err := s.writeFrame(serverFrame{
		Type:   FrameHello,
		App:    s.app.Name(),
		Params: s.app.Specs(),
	}); err != nil {
		return
	}
	if err := s.pushScenes(); err != nil {
		return
	}

	s.conn.SetReadLimit(maxFrameBytes)
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				s.metrics.WSErrors.WithLabelValues("read").Inc()
			}
			return
		}
		s.touch()

		var frame clientFrame
		if err := json.Unmarshal(msg, &frame); err != nil {
			s.logger.Warn("malformed frame", "error", err)
			s.sendError(ierrors.New("E200", ierrors.CategoryProtocol, "malformed frame"))
			continue
		}

		switch frame.Type {
		case FrameSet:
			s.handleSet(frame)
		default:
			s.logger.Warn("unknown frame type", "type", frame.Type)
			s.sendError(ierrors.Newf("E201", ierrors.CategoryProtocol, "unknown frame type %q", frame.Type))
		}
	}
}

// handleSet applies one parameter change and pushes the refreshed scenes.
// A rejected change reports an error frame and leaves all state as it was.
func (s *Session) handleSet(frame clientFrame) {
	start := time.Now()
	_, span := s.tracer.Start(s.ctx, "session.set",
		trace.WithAttributes(
			attribute.String("app", s.app.Name()),
			attribute.String("param", frame.Name),
		))
	defer span.End()

	if err := s.app.Set(frame.Name, frame.Value); err != nil {
		s.logger.Info("rejected parameter", "param", frame.Name, "value", frame.Value, "error", err)
		s.metrics.EventsTotal.WithLabelValues(s.app.Name(), "rejected").Inc()
		span.SetStatus(codes.Error, err.Error())
		s.sendError(err)
		return
	}

	if err := s.pushScenes(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return
	}

	s.metrics.EventsTotal.WithLabelValues(s.app.Name(), "ok").Inc()
	s.metrics.EventDuration.WithLabelValues(s.app.Name()).Observe(time.Since(start).Seconds())
	span.SetStatus(codes.Ok, "")
}

// pushScenes renders every view and writes the scene frames, then exports
// the recompute deltas the render caused.
func (s *Session) pushScenes() error {
	scenes := s.app.Scenes()
	for view, sc := range scenes {
		sc := sc
		if err := s.writeFrame(serverFrame{Type: FrameScene, View: view, Scene: &sc}); err != nil {
			return err
		}
	}

	for node, runs := range s.app.Recomputes() {
		if delta := runs - s.lastRecomputes[node]; delta > 0 {
			s.metrics.RecomputesTotal.WithLabelValues(s.app.Name(), node).Add(float64(delta))
		}
		s.lastRecomputes[node] = runs
	}
	return nil
}

// sendError reports a rejected event. Coded errors keep their code and
// suggestion on the wire.
func (s *Session) sendError(err error) {
	frame := serverFrame{Type: FrameError, Message: err.Error()}

	var coded *ierrors.Error
	if errors.As(err, &coded) {
		frame.Code = coded.Code
		frame.Message = coded.Message
		frame.Suggestion = coded.Suggestion
	}

	_ = s.writeFrame(frame)
}

// writeFrame marshals and writes one frame under the write lock.
func (s *Session) writeFrame(frame serverFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.metrics.WSErrors.WithLabelValues("write").Inc()
		return err
	}
	if frame.Type == FrameScene {
		s.metrics.SceneBytes.Add(float64(len(data)))
	}
	return nil
}

// Close tears the connection down exactly once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
		if s.onClose != nil {
			s.onClose(s)
		}
		s.logger.Debug("session closed")
	})
}
