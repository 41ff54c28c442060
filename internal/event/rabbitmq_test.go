package event

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, exchange+"/"+key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

type PublisherSuite struct {
	suite.Suite
	ch  *fakeChannel
	pub *RabbitMQ
}

func (s *PublisherSuite) SetupTest() {
	s.ch = &fakeChannel{}
	s.pub = &RabbitMQ{
		channel:    s.ch,
		exchange:   "newsbangla24",
		routingKey: "articles",
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestPublisherSuite(t *testing.T) {
	suite.Run(t, new(PublisherSuite))
}

func (s *PublisherSuite) TestPublishArticleEvent() {
	published := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	evt := ArticleEvent{
		Type:        ArticlePublished,
		ArticleID:   42,
		Slug:        "dhaka-metro",
		TitleBn:     "ঢাকা মেট্রো",
		TitleEn:     "Dhaka Metro",
		PublishedAt: published,
	}

	s.Require().NoError(s.pub.Publish(context.Background(), evt))
	s.Require().Len(s.ch.published, 1)

	msg := s.ch.published[0]
	s.Equal([]string{"newsbangla24/articles"}, s.ch.keys)
	s.Equal("application/json", msg.ContentType)
	s.Equal(amqp.Persistent, msg.DeliveryMode)
	s.Equal(ArticlePublished, msg.Type)

	var received ArticleEvent
	s.Require().NoError(json.Unmarshal(msg.Body, &received))
	s.Equal(uint(42), received.ArticleID)
	s.Equal("ঢাকা মেট্রো", received.TitleBn)
	s.True(received.PublishedAt.Equal(published))
	s.False(received.Timestamp.IsZero())
}

func (s *PublisherSuite) TestPublishError() {
	s.ch.err = errors.New("channel closed")
	err := s.pub.Publish(context.Background(), ArticleEvent{Type: ArticlePublished})
	s.ErrorContains(err, "channel closed")
}

func (s *PublisherSuite) TestClose() {
	s.NoError(s.pub.Close())
	s.True(s.ch.closed)
}

func (s *PublisherSuite) TestNoopPublisher() {
	var p Publisher = NoopPublisher{}
	s.NoError(p.Publish(context.Background(), ArticleEvent{}))
	s.NoError(p.Close())
}
