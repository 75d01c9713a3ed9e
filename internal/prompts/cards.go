package prompts

import "fmt"

// CardKind selects the response card layout.
type CardKind string

const (
	CardConfirm     CardKind = "confirm"
	CardTimeOptions CardKind = "time_options"
)

// maxCardOptions caps the buttons shown on a time card.
const maxCardOptions = 5

// Card carries the candidate values a response card offers. The scheduler
// fills it; BuildCard turns it into text.
type Card struct {
	Kind    CardKind
	Date    string
	Options []string
}

// Button is one choice on a card.
type Button struct {
	Text  string
	Value string
}

// RenderedCard is the text form of a Card.
type RenderedCard struct {
	Title    string
	Subtitle string
	Buttons  []Button
}

// BuildCard renders the title, subtitle and buttons for c.
func BuildCard(c Card) (RenderedCard, bool) {
	switch c.Kind {
	case CardConfirm:
		if len(c.Options) == 0 {
			return RenderedCard{}, false
		}
		return RenderedCard{
			Title:    "Confirm Meeting",
			Subtitle: fmt.Sprintf("Is %s on %s okay?", FormatTime(c.Options[0]), c.Date),
			Buttons:  []Button{{Text: "yes", Value: "yes"}, {Text: "no", Value: "no"}},
		}, true
	case CardTimeOptions:
		if len(c.Options) == 0 {
			return RenderedCard{}, false
		}
		n := min(len(c.Options), maxCardOptions)
		buttons := make([]Button, 0, n)
		for _, opt := range c.Options[:n] {
			buttons = append(buttons, Button{Text: FormatTime(opt), Value: opt})
		}
		return RenderedCard{
			Title:    "Specify Time",
			Subtitle: "What time works best for you?",
			Buttons:  buttons,
		}, true
	}
	return RenderedCard{}, false
}
