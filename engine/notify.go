package engine

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/woquz/wordmines/game"
)

// Notifier receives match lifecycle and state-change events.
// Implementations must not call back into the engine. Delivery is
// best-effort; the engine's own state stays authoritative.
type Notifier interface {
	MatchStarted(m *game.Match)
	MatchEnded(m *game.Match)
	// StateChanged carries one participant's redacted view after a
	// mutation; it fires once per participant.
	StateChanged(v *game.StateView)
}

// LogNotifier writes events to the structured log. It is the default
// when no message bus is configured.
type LogNotifier struct{}

func (LogNotifier) MatchStarted(m *game.Match) {
	log.Info().Str("match", m.ID).
		Strs("players", m.Players[:]).
		Str("time_control", string(m.TimeControl)).
		Msg("match started")
}

func (LogNotifier) MatchEnded(m *game.Match) {
	log.Info().Str("match", m.ID).Str("winner", m.Winner).
		Str("reason", string(m.EndReason)).Msg("match ended")
}

func (LogNotifier) StateChanged(v *game.StateView) {
	log.Debug().Str("match", v.MatchID).Str("player", v.PlayerID).
		Msg("state changed")
}

// NATSNotifier publishes match events as JSON on the message bus so
// front ends can push them to connected players.
type NATSNotifier struct {
	conn *nats.Conn
}

// NewNATSNotifier connects to the bus at url.
func NewNATSNotifier(url string) (*NATSNotifier, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &NATSNotifier{conn: conn}, nil
}

// Close drains the connection.
func (n *NATSNotifier) Close() {
	n.conn.Close()
}

func (n *NATSNotifier) publish(subject string, m *game.Match) {
	data, err := json.Marshal(m)
	if err != nil {
		log.Error().Err(err).Str("match", m.ID).Msg("could not encode event")
		return
	}
	if err := n.conn.Publish(subject, data); err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("could not publish event")
	}
}

func (n *NATSNotifier) MatchStarted(m *game.Match) {
	n.publish("wordmines.match.started", m)
}

func (n *NATSNotifier) MatchEnded(m *game.Match) {
	n.publish("wordmines.match.ended", m)
}

// StateChanged publishes on a per-player subject so the transport can
// fan each view out to exactly its owner.
func (n *NATSNotifier) StateChanged(v *game.StateView) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("match", v.MatchID).Msg("could not encode view")
		return
	}
	subject := "wordmines.player." + v.PlayerID
	if err := n.conn.Publish(subject, data); err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("could not publish view")
	}
}
