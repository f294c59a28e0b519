package templates

import (
	"context"

	"github.com/a-h/templ"
)

// PreviewID is the element id of the live offer preview.
const PreviewID = "offer-preview"

// StepIndicator is the wizard progress header.
type StepIndicator struct {
	Labels  []string
	Current int
}

// ModeChoice is one selectable creation path.
type ModeChoice struct {
	Value   string
	Title   string
	Summary string
}

// ModeView is the first wizard step.
type ModeView struct {
	Steps       StepIndicator
	Action      string
	Choices     []ModeChoice
	SubmitToken string
}

// ModeStep renders the scratch-or-redesign choice.
func ModeStep(view ModeView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		wizardHeader(m, view.Steps)
		m.raw(`<section class="wizard__step"><h1>`)
		m.text(T(loc, "web.creator.mode.heading"))
		m.raw(`</h1><form method="post" class="choices"`)
		m.attr("action", view.Action)
		m.raw(`>`)
		hiddenInput(m, "submit_token", view.SubmitToken)
		for _, choice := range view.Choices {
			m.raw(`<button type="submit" name="mode" class="card choice"`)
			m.attr("value", choice.Value)
			m.raw(`><strong>`)
			m.text(choice.Title)
			m.raw(`</strong><span>`)
			m.text(choice.Summary)
			m.raw(`</span></button>`)
		}
		m.raw(`</form></section>`)
	})
}

// Exchange is one answered question in the guided transcript.
type Exchange struct {
	Question string
	Answer   string
}

// GuidedView is the scripted Q&A step.
type GuidedView struct {
	Steps       StepIndicator
	Action      string
	BackAction  string
	Transcript  []Exchange
	Question    string
	Position    int
	Total       int
	Error       string
	SubmitToken string
}

// GuidedStep renders the transcript and the current prompt.
func GuidedStep(view GuidedView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		wizardHeader(m, view.Steps)
		m.raw(`<section class="wizard__step chat"><h1>`)
		m.text(T(loc, "web.guided.heading"))
		m.raw(`</h1><p class="chat__progress">`)
		m.text(T(loc, "web.guided.progress", view.Position, view.Total))
		m.raw(`</p><ol class="chat__log">`)
		m.raw(`<li class="chat__bubble chat__bubble--assistant">`)
		m.text(T(loc, "web.guided.intro"))
		m.raw(`</li>`)
		for _, ex := range view.Transcript {
			m.raw(`<li class="chat__bubble chat__bubble--assistant">`)
			m.text(ex.Question)
			m.raw(`</li><li class="chat__bubble chat__bubble--user">`)
			m.text(ex.Answer)
			m.raw(`</li>`)
		}
		m.raw(`<li class="chat__bubble chat__bubble--assistant chat__bubble--current">`)
		m.text(view.Question)
		m.raw(`</li></ol><form method="post" class="chat__form"`)
		m.attr("action", view.Action)
		m.raw(`>`)
		hiddenInput(m, "submit_token", view.SubmitToken)
		m.raw(`<label class="visually-hidden" for="answer">`)
		m.text(view.Question)
		m.raw(`</label><textarea id="answer" name="answer" rows="3" required`)
		m.attr("placeholder", T(loc, "web.guided.placeholder"))
		if view.Error != "" {
			m.raw(` aria-invalid="true"`)
		}
		m.raw(`></textarea>`)
		fieldError(m, map[string]string{"answer": view.Error}, "answer")
		m.raw(`<button type="submit" class="button">`)
		m.text(T(loc, "web.guided.send"))
		m.raw(`</button></form>`)
		restartForm(m, loc, view.BackAction)
		m.raw(`</section>`)
	})
}

// UploadView is the redesign upload step.
type UploadView struct {
	Steps       StepIndicator
	Action      string
	BackAction  string
	Accept      string
	Error       string
	SubmitToken string
}

// UploadStep renders the document upload form.
func UploadStep(view UploadView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		wizardHeader(m, view.Steps)
		m.raw(`<section class="wizard__step upload"><h1>`)
		m.text(T(loc, "web.upload.heading"))
		m.raw(`</h1><p>`)
		m.text(T(loc, "web.upload.lead"))
		m.raw(`</p><form method="post" enctype="multipart/form-data"`)
		m.attr("action", view.Action)
		m.raw(`>`)
		hiddenInput(m, "submit_token", view.SubmitToken)
		m.raw(`<div class="field upload__drop"><label for="document">`)
		m.text(T(loc, "web.upload.choose"))
		m.raw(`</label><input type="file" id="document" name="document" required`)
		m.attr("accept", view.Accept)
		m.raw(`><p class="field__hint">`)
		m.text(T(loc, "web.upload.hint"))
		m.raw(`</p>`)
		fieldError(m, map[string]string{"document": view.Error}, "document")
		m.raw(`</div><button type="submit" class="button">`)
		m.text(T(loc, "web.upload.submit"))
		m.raw(`</button></form>`)
		restartForm(m, loc, view.BackAction)
		m.raw(`</section>`)
	})
}

// TemplateChoice is one card of the template picker.
type TemplateChoice struct {
	Value       string
	Name        string
	Summary     string
	BestFor     string
	Swatches    [3]string
	Recommended bool
	Selected    bool
}

// TemplateView is the template selection step.
type TemplateView struct {
	Steps       StepIndicator
	Action      string
	BackAction  string
	Choices     []TemplateChoice
	SubmitToken string
}

// TemplateStep renders the four layout choices.
func TemplateStep(view TemplateView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		wizardHeader(m, view.Steps)
		m.raw(`<section class="wizard__step"><h1>`)
		m.text(T(loc, "web.creator.template.heading"))
		m.raw(`</h1><form method="post" class="choices choices--grid"`)
		m.attr("action", view.Action)
		m.raw(`>`)
		hiddenInput(m, "submit_token", view.SubmitToken)
		for _, choice := range view.Choices {
			class := "card choice"
			if choice.Selected {
				class += " choice--selected"
			}
			m.raw(`<button type="submit" name="template"`)
			m.attr("class", class)
			m.attr("value", choice.Value)
			m.raw(`><span class="swatches">`)
			for _, swatch := range choice.Swatches {
				m.raw(`<span class="swatch"`)
				m.attr("style", "background:"+swatch)
				m.raw(`></span>`)
			}
			m.raw(`</span><strong>`)
			m.text(choice.Name)
			m.raw(`</strong>`)
			if choice.Recommended {
				m.raw(` <span class="badge">`)
				m.text(T(loc, "web.creator.template.recommended"))
				m.raw(`</span>`)
			}
			m.raw(`<span>`)
			m.text(choice.Summary)
			m.raw(`</span><small>`)
			m.text(T(loc, "web.creator.template.best_for", choice.BestFor))
			m.raw(`</small></button>`)
		}
		m.raw(`</form>`)
		restartForm(m, loc, view.BackAction)
		m.raw(`</section>`)
	})
}

func wizardHeader(m *markup, steps StepIndicator) {
	if len(steps.Labels) == 0 {
		return
	}
	m.raw(`<ol class="wizard__steps">`)
	for i, label := range steps.Labels {
		class := "wizard__steps-item"
		switch {
		case i < steps.Current:
			class += " wizard__steps-item--done"
		case i == steps.Current:
			class += " wizard__steps-item--current"
		}
		m.raw(`<li`)
		m.attr("class", class)
		if i == steps.Current {
			m.raw(` aria-current="step"`)
		}
		m.raw(`>`)
		m.text(label)
		m.raw(`</li>`)
	}
	m.raw(`</ol>`)
}

func restartForm(m *markup, loc Localizer, action string) {
	if action == "" {
		return
	}
	m.raw(`<form method="post" class="wizard__restart"`)
	m.attr("action", action)
	m.raw(`><button type="submit" class="button button--ghost">`)
	m.text(T(loc, "web.creator.start_over"))
	m.raw(`</button></form>`)
}
