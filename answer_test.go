package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Env:          "test",
		Version:      "3.0.0",
		Host:         "127.0.0.1",
		Port:         "8005",
		CORSOrigins:  "*",
		HandbookName: "Insurance Policy Handbook",
		SupportPhone: "1234567890",
		SupportHours: "24/7 Support Available",
		SupportWait:  "Average wait: 2 minutes",
	}
}

func TestAnswerComposer_Matched(t *testing.T) {
	a := NewAnswerComposer(testConfig())
	result := NewMatcher(DefaultKnowledgeBase()).Match("What is my deductible?")

	answer := a.Compose(result)
	assert.True(t, answer.Matched)
	assert.Equal(t, 0.95, answer.Confidence)
	assert.Contains(t, answer.Response, "$1,500")
	assert.Equal(t, []string{"Insurance Policy Handbook - Coverage Basics"}, answer.Sources)
	assert.Nil(t, answer.CustomerService)
}

func TestAnswerComposer_NoMatch(t *testing.T) {
	a := NewAnswerComposer(testConfig())
	result := NewMatcher(DefaultKnowledgeBase()).Match("purple giraffe socks")

	answer := a.Compose(result)
	assert.False(t, answer.Matched)
	assert.Equal(t, FallbackConfidence, answer.Confidence)
	assert.Contains(t, answer.Response, "1234567890")
	assert.Equal(t, []string{"Customer Service Recommended"}, answer.Sources)

	require.NotNil(t, answer.CustomerService)
	assert.Equal(t, "1234567890", answer.CustomerService.Phone)
	assert.Equal(t, "24/7 Support Available", answer.CustomerService.Hours)
	assert.Equal(t, "Average wait: 2 minutes", answer.CustomerService.WaitTime)
}

func TestAnswerComposer_MatchedButEscalated(t *testing.T) {
	a := NewAnswerComposer(testConfig())
	topic := &Topic{Key: "billing", Response: "See your statement.", Confidence: 0.2, Category: "billing_support"}

	answer := a.Compose(MatchResult{Topic: topic, Score: 12, Confidence: 0.2, Escalate: true})
	assert.True(t, answer.Matched)
	assert.Equal(t, "See your statement.", answer.Response)
	assert.Equal(t, []string{"Insurance Policy Handbook - Billing Support"}, answer.Sources)
	require.NotNil(t, answer.CustomerService)
	assert.Contains(t, answer.CustomerService.Message, "1234567890")
}

func TestAnswerComposer_CategoryTitle(t *testing.T) {
	a := NewAnswerComposer(testConfig())

	tests := []struct {
		category string
		want     string
	}{
		{"coverage_basics", "Coverage Basics"},
		{"mental_health", "Mental Health"},
		{"emergency_care", "Emergency Care"},
		{"dental", "Dental"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, a.CategoryTitle(tt.category))
		})
	}
}

func TestAnswerComposer_Contacts(t *testing.T) {
	cfg := testConfig()
	cfg.SupportPhone = "555-0100"
	a := NewAnswerComposer(cfg)

	missing := a.MissingQueryContact()
	assert.Equal(t, "555-0100", missing.Phone)
	assert.Contains(t, missing.Message, "Please provide a question")

	failed := a.ErrorContact()
	assert.Contains(t, failed.Message, "555-0100")
}
