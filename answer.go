package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const customerServiceSource = "Customer Service Recommended"

// Answer is a match result rendered for a caller
type Answer struct {
	Response        string
	Confidence      float64
	Sources         []string
	Matched         bool
	CustomerService *CustomerService
}

// AnswerComposer renders match results into answers with citations and support contacts
type AnswerComposer struct {
	handbook string
	support  CustomerService
}

func NewAnswerComposer(cfg *Config) *AnswerComposer {
	return &AnswerComposer{
		handbook: cfg.HandbookName,
		support: CustomerService{
			Phone:    cfg.SupportPhone,
			Hours:    cfg.SupportHours,
			WaitTime: cfg.SupportWait,
		},
	}
}

// Compose turns a match result into an answer. Escalated results always carry
// the customer service contact, matched or not.
func (a *AnswerComposer) Compose(result MatchResult) Answer {
	var answer Answer

	if result.Matched() {
		answer = Answer{
			Response:   result.Topic.Response,
			Confidence: result.Confidence,
			Sources:    []string{a.Citation(result.Topic.Category)},
			Matched:    true,
		}
	} else {
		answer = Answer{
			Response: fmt.Sprintf("I couldn't find specific information about your question in our insurance policy database. "+
				"For accurate information about your specific situation, please contact our customer service team at %s "+
				"who can provide personalized assistance with your specific query.", a.support.Phone),
			Confidence: result.Confidence,
			Sources:    []string{customerServiceSource},
		}
	}

	if result.Escalate {
		contact := a.support
		if answer.Matched {
			contact.Message = fmt.Sprintf("For more detailed assistance, please contact our customer service team at %s", a.support.Phone)
		}
		answer.CustomerService = &contact
	}

	return answer
}

// Citation formats "<Handbook> - <Category Title>"
func (a *AnswerComposer) Citation(category string) string {
	return a.handbook + " - " + a.CategoryTitle(category)
}

// CategoryTitle turns "coverage_basics" into "Coverage Basics".
// Casers are stateful, so one is built per call.
func (a *AnswerComposer) CategoryTitle(category string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(category, "_", " "))
}

// MissingQueryContact is the contact block returned with an empty query
func (a *AnswerComposer) MissingQueryContact() CustomerService {
	return CustomerService{
		Phone:   a.support.Phone,
		Message: fmt.Sprintf("Please provide a question or call customer service at %s", a.support.Phone),
	}
}

// ErrorContact is the contact block returned when a query could not be processed
func (a *AnswerComposer) ErrorContact() CustomerService {
	return CustomerService{
		Phone:   a.support.Phone,
		Message: fmt.Sprintf("An error occurred. Please contact customer service at %s for assistance", a.support.Phone),
	}
}
