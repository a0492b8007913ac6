// Package moderation decides whether freshly submitted community content can be
// published right away or has to wait for a human reviewer.
package moderation

import "strings"

type Category string

const (
	CategoryContactInfo Category = "contact_info"
	CategorySelfHarm    Category = "self_harm"
)

type Decision string

const (
	DecisionPublish       Decision = "publish"
	DecisionHoldForReview Decision = "hold_for_review"
)

type policy struct {
	category Category
	terms    []string
}

// Matching is by plain substring, so "contact" also trips "contacts" and
// "call" trips "recall".
var policies = []policy{
	{
		category: CategoryContactInfo,
		terms:    []string{"call", "text", "phone", "number", "contact", "email", "address"},
	},
	{
		category: CategorySelfHarm,
		terms: []string{
			"suicide", "kill myself", "end my life", "want to die",
			"killing myself", "take my life", "harm myself",
		},
	},
}

type Verdict struct {
	Flagged    bool
	Categories []Category
}

// Decision maps the verdict to the action taken on the content. Every category
// currently leads to the same review queue.
func (v Verdict) Decision() Decision {
	if v.Flagged {
		return DecisionHoldForReview
	}
	return DecisionPublish
}

func (v Verdict) Has(c Category) bool {
	for _, got := range v.Categories {
		if got == c {
			return true
		}
	}
	return false
}

func Classify(content string) Verdict {
	var v Verdict
	if content == "" {
		return v
	}
	lower := strings.ToLower(content)
	for _, p := range policies {
		for _, term := range p.terms {
			if strings.Contains(lower, term) {
				v.Flagged = true
				v.Categories = append(v.Categories, p.category)
				break
			}
		}
	}
	return v
}
