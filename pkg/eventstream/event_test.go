package eventstream_test

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/eventstream"
)

func TestEventstream(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Eventstream Suite")
}

var _ = Describe("Event", func() {
	It("marshals TurnAnsweredEvent with expected top-level keys", func() {
		now := time.Unix(1735689600, 0).UTC()
		event := eventstream.NewTurnAnsweredEvent(
			"What is the refund window?",
			"SEARCH",
			42,
			"Refunds are accepted within 30 days.",
			now.Add(-2*time.Second),
			now,
		)

		payload, err := json.Marshal(event)
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]json.RawMessage
		Expect(json.Unmarshal(payload, &decoded)).To(Succeed())
		Expect(decoded).To(HaveKey("schema_version"))
		Expect(decoded).To(HaveKey("event_type"))
		Expect(decoded).To(HaveKey("event_id"))
		Expect(decoded).To(HaveKey("emitted_at"))
		Expect(decoded).To(HaveKey("turn"))
		Expect(decoded).To(HaveKey("request"))
	})

	It("fills in schema version, type, and a unique ID", func() {
		now := time.Now().UTC()
		a := eventstream.NewTurnAnsweredEvent("q", "CHAT", 0, "a", now, now)
		b := eventstream.NewTurnAnsweredEvent("q", "CHAT", 0, "a", now, now)

		Expect(a.SchemaVersion).To(Equal(eventstream.SchemaVersionV1))
		Expect(a.EventType).To(Equal(eventstream.EventTypeTurnAnswered))
		Expect(a.EventID).To(HavePrefix("evt_"))
		Expect(a.EventID).NotTo(Equal(b.EventID))
	})

	It("records the retrieved context size, not the context", func() {
		now := time.Now().UTC()
		event := eventstream.NewTurnAnsweredEvent("q", "SEARCH", 1200, "a", now, now)
		Expect(event.Turn.ContextChars).To(Equal(1200))

		payload, err := json.Marshal(event)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(payload)).To(ContainSubstring(`"context_chars":1200`))
	})

	It("computes the turn duration in milliseconds", func() {
		start := time.Unix(1735689600, 0).UTC()
		event := eventstream.NewTurnAnsweredEvent("q", "SQL", 0, "a", start, start.Add(1500*time.Millisecond))
		Expect(event.Request.DurationMs).To(Equal(int64(1500)))
	})
})
