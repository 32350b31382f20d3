package messaging

import (
	"fmt"
	"regexp"

	"github.com/pixil98/go-realm/internal/storage"
)

const DefaultSubjectPrefix = "realm"

var subjectPrefixPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)*$`)

// Bus is the part of NatsServer the publisher needs.
type Bus interface {
	Publish(subject string, data []byte) error
}

// NatsPublisher delivers messages to per-character NATS subjects of the form
// "<prefix>.<type>.<id>".
type NatsPublisher struct {
	bus    Bus
	prefix string
}

type NatsPublisherOpt func(*NatsPublisher)

// WithSubjectPrefix replaces the leading subject tokens, e.g. "realm.eu-1".
func WithSubjectPrefix(prefix string) NatsPublisherOpt {
	return func(p *NatsPublisher) {
		p.prefix = prefix
	}
}

func NewNatsPublisher(bus Bus, opts ...NatsPublisherOpt) *NatsPublisher {
	p := &NatsPublisher{bus: bus, prefix: DefaultSubjectPrefix}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ValidateSubjectPrefix checks that prefix is a usable literal NATS subject.
func ValidateSubjectPrefix(prefix string) error {
	if !subjectPrefixPattern.MatchString(prefix) {
		return fmt.Errorf("invalid subject prefix %q", prefix)
	}
	return nil
}

// Subject returns the subject a character's session listens on.
func (p *NatsPublisher) Subject(charKey storage.Key) string {
	return fmt.Sprintf("%s.%s.%d", p.prefix, charKey.Type, charKey.Id)
}

func (p *NatsPublisher) PublishToCharacter(charKey storage.Key, data []byte) error {
	if err := p.bus.Publish(p.Subject(charKey), data); err != nil {
		return fmt.Errorf("publishing to %s: %w", charKey, err)
	}
	return nil
}
