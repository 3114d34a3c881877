package render

import (
	"fmt"
	"strings"

	"addressbook/internal/domain"
)

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return ErrorMsg.Render(message)
	}
	return Success.Render(message)
}

// RenderLabelValue renders a label: value pair
func RenderLabelValue(label, value string) string {
	return fmt.Sprintf("%s %s", Label.Render(label+":"), value)
}

// RenderTags renders each tag as a badge
func RenderTags(tags []domain.Tag) string {
	var parts []string
	for _, t := range tags {
		parts = append(parts, TagStyle.Render(string(t)))
	}
	return strings.Join(parts, "")
}

// RenderPerson renders one person as a card under its one-based index
func RenderPerson(index int, p domain.Person) string {
	var b strings.Builder

	b.WriteString(IndexStyle.Render(fmt.Sprintf("%d.", index)))
	b.WriteString(" ")
	b.WriteString(NameStyle.Render(string(p.Name())))
	if tags := p.Tags(); len(tags) > 0 {
		b.WriteString(" ")
		b.WriteString(RenderTags(tags))
	}
	b.WriteString("\n")

	indent := strings.Repeat(" ", 5)
	b.WriteString(indent + RenderLabelValue("Phone", string(p.Phone())) + "\n")
	b.WriteString(indent + RenderLabelValue("Email", string(p.Email())) + "\n")
	b.WriteString(indent + RenderLabelValue("Address", string(p.Address())) + "\n")
	if p.Remark() != "" {
		b.WriteString(indent + RemarkStyle.Render(string(p.Remark())) + "\n")
	}
	return b.String()
}

// RenderFilter describes the active filter
func RenderFilter(f domain.Filter) string {
	switch f.Kind {
	case domain.FilterNameKeywords:
		return "name contains " + strings.Join(f.Keywords, " or ")
	case domain.FilterTag:
		return "tagged " + strings.Join(f.Keywords, " or ")
	default:
		return "all persons"
	}
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(Title.Render(title))
	v.b.WriteString("\n")
	return v
}

// Subtitle adds a subtitle section
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(Subtitle.Render(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Message adds a message if non-empty, with appropriate error/success styling
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n")
	return v
}

// Persons adds a numbered card for each person, or a muted note if there are none
func (v *ViewBuilder) Persons(persons []domain.Person) *ViewBuilder {
	if len(persons) == 0 {
		v.b.WriteString(MutedText.Render("No persons to show."))
		v.b.WriteString("\n")
		return v
	}
	for i, p := range persons {
		v.b.WriteString(RenderPerson(i+1, p))
	}
	return v
}

// String returns the built view
func (v *ViewBuilder) String() string {
	return v.b.String()
}

// Listing renders the displayed persons headed by the active filter
func Listing(persons []domain.Person, filter domain.Filter) string {
	return NewViewBuilder().
		Title("Address Book").
		Subtitle(fmt.Sprintf("%d shown, %s", len(persons), RenderFilter(filter))).
		Persons(persons).
		String()
}

// Plain renders the displayed persons one per line using Person.String,
// for scripts and tool output
func Plain(persons []domain.Person) string {
	var b strings.Builder
	for i, p := range persons {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return b.String()
}
