package creator

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/offer/guided"
	"github.com/louisbranch/closealead/internal/offer/render"
	"github.com/louisbranch/closealead/internal/offer/upload"
	"github.com/louisbranch/closealead/internal/offer/wizard"
	"github.com/louisbranch/closealead/internal/plan"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/closealead/internal/services/web/templates"
)

var wizardSteps = []wizard.Step{wizard.StepMode, wizard.StepInput, wizard.StepTemplate, wizard.StepCustomize}

// uploadAccept lists the document types offered by the file picker.
const uploadAccept = ".pdf,.docx,.txt,application/pdf,application/vnd.openxmlformats-officedocument.wordprocessingml.document,text/plain"

// editorPaths are the form targets of one editor surface.
type editorPaths struct {
	base      string
	customize string
	preview   string
	save      string
	export    string
	back      string
	heading   string
	saveLabel string
	backLabel string
}

func createPaths() editorPaths {
	return editorPaths{
		base:      routepath.Create,
		customize: routepath.CreateCustomize,
		preview:   routepath.CreatePreview,
		save:      routepath.CreateSave,
		back:      routepath.CreateRestart,
		heading:   "web.editor.heading_new",
		saveLabel: "web.editor.save_new",
		backLabel: "web.creator.start_over",
	}
}

func editPaths(offerID string) editorPaths {
	return editorPaths{
		base:      routepath.Edit(offerID),
		customize: routepath.EditCustomize(offerID),
		preview:   routepath.EditPreview(offerID),
		save:      routepath.EditSave(offerID),
		export:    routepath.EditExport(offerID),
		back:      routepath.EditReload(offerID),
		heading:   "web.editor.heading_edit",
		saveLabel: "web.editor.save_changes",
		backLabel: "web.editor.discard",
	}
}

func stepIndicator(loc webtemplates.Localizer, current wizard.Step) webtemplates.StepIndicator {
	indicator := webtemplates.StepIndicator{Labels: make([]string, 0, len(wizardSteps))}
	for i, step := range wizardSteps {
		indicator.Labels = append(indicator.Labels, webtemplates.T(loc, "web.creator.step."+string(step)))
		if step == current {
			indicator.Current = i
		}
	}
	return indicator
}

func modeView(loc webtemplates.Localizer, token string) webtemplates.ModeView {
	return webtemplates.ModeView{
		Steps:  stepIndicator(loc, wizard.StepMode),
		Action: routepath.CreateMode,
		Choices: []webtemplates.ModeChoice{
			{
				Value:   string(wizard.ModeScratch),
				Title:   webtemplates.T(loc, "web.creator.mode.scratch.title"),
				Summary: webtemplates.T(loc, "web.creator.mode.scratch.summary"),
			},
			{
				Value:   string(wizard.ModeRedesign),
				Title:   webtemplates.T(loc, "web.creator.mode.redesign.title"),
				Summary: webtemplates.T(loc, "web.creator.mode.redesign.summary"),
			},
		},
		SubmitToken: token,
	}
}

func guidedView(loc webtemplates.Localizer, w *wizard.Wizard, token, errKey string) webtemplates.GuidedView {
	iv := w.Interview()
	transcript := iv.Transcript()
	view := webtemplates.GuidedView{
		Steps:       stepIndicator(loc, wizard.StepInput),
		Action:      routepath.CreateAnswer,
		BackAction:  routepath.CreateRestart,
		Transcript:  make([]webtemplates.Exchange, 0, len(transcript)),
		Position:    len(transcript) + 1,
		Total:       len(guided.Prompts),
		SubmitToken: token,
	}
	for _, ex := range transcript {
		view.Transcript = append(view.Transcript, webtemplates.Exchange{
			Question: webtemplates.T(loc, ex.Prompt.QuestionKey),
			Answer:   ex.Answer,
		})
	}
	if prompt, ok := iv.Next(); ok {
		view.Question = webtemplates.T(loc, prompt.QuestionKey)
	}
	if errKey != "" {
		view.Error = webtemplates.T(loc, errKey)
	}
	return view
}

func uploadView(loc webtemplates.Localizer, token, errKey string) webtemplates.UploadView {
	view := webtemplates.UploadView{
		Steps:       stepIndicator(loc, wizard.StepInput),
		Action:      routepath.CreateUpload,
		BackAction:  routepath.CreateRestart,
		Accept:      uploadAccept,
		SubmitToken: token,
	}
	if errKey != "" {
		view.Error = webtemplates.T(loc, errKey)
	}
	return view
}

func templateView(loc webtemplates.Localizer, w *wizard.Wizard, token string) webtemplates.TemplateView {
	catalog := render.Catalog()
	view := webtemplates.TemplateView{
		Steps:       stepIndicator(loc, wizard.StepTemplate),
		Action:      routepath.CreateTemplate,
		BackAction:  routepath.CreateRestart,
		Choices:     make([]webtemplates.TemplateChoice, 0, len(catalog)),
		SubmitToken: token,
	}
	current := w.Draft().Template
	for _, info := range catalog {
		view.Choices = append(view.Choices, webtemplates.TemplateChoice{
			Value:       string(info.Template),
			Name:        webtemplates.T(loc, info.NameKey),
			Summary:     webtemplates.T(loc, info.SummaryKey),
			BestFor:     webtemplates.T(loc, info.BestForKey),
			Swatches:    info.Swatches,
			Recommended: info.Recommended,
			Selected:    info.Template == current,
		})
	}
	return view
}

type editorInput struct {
	paths    editorPaths
	wizard   *wizard.Wizard
	section  offer.Section
	notices  []offer.Notice
	preview  string
	token    string
	planName string
	showStep bool
}

func editorView(loc webtemplates.Localizer, in editorInput) webtemplates.EditorView {
	d := in.wizard.Draft()
	view := webtemplates.EditorView{
		Heading:     webtemplates.T(loc, in.paths.heading),
		Section:     string(in.section),
		FormAction:  in.paths.customize,
		PreviewURL:  in.paths.preview,
		SaveAction:  in.paths.save,
		SaveLabel:   webtemplates.T(loc, in.paths.saveLabel),
		BackAction:  in.paths.back,
		BackLabel:   webtemplates.T(loc, in.paths.backLabel),
		SubmitToken: in.token,
		CanSave:     in.wizard.CanSave(),
		Fields:      editorFields(loc, d),
		PreviewHTML: in.preview,
	}
	if in.showStep {
		view.Steps = stepIndicator(loc, wizard.StepCustomize)
	}
	if in.wizard.CanExport() {
		view.ExportAction = in.paths.export
	}
	for _, section := range offer.Sections() {
		view.Tabs = append(view.Tabs, webtemplates.Tab{
			Value:  string(section),
			Label:  webtemplates.T(loc, "web.editor.tab."+string(section)),
			URL:    routepath.WithSection(in.paths.base, string(section)),
			Active: section == in.section,
		})
	}
	for _, notice := range in.notices {
		view.Notices = append(view.Notices, webtemplates.T(loc, notice.Key))
	}
	if in.wizard.OfferID() != "" {
		view.EditsLabel, view.EditsWarning = editsBadge(loc, in.planName, d)
	}
	return view
}

// editsBadge describes the edits left on a persisted offer. Drafts without
// their own limit use the plan default.
func editsBadge(loc webtemplates.Localizer, planName string, d offer.Draft) (string, bool) {
	limit := plan.EffectiveEditLimit(planName, plan.EditUsage{EditCount: d.EditCount, EditLimit: d.EditLimit})
	if limit == plan.Unlimited {
		return webtemplates.T(loc, "web.editor.edits_unlimited"), false
	}
	remaining := plan.RemainingEdits(limit, d.EditCount)
	return webtemplates.T(loc, "web.editor.edits_remaining", remaining, limit), plan.High(plan.EditPercent(limit, d.EditCount))
}

func editorFields(loc webtemplates.Localizer, d offer.Draft) webtemplates.EditorFields {
	fields := webtemplates.EditorFields{
		Title:         d.Title,
		Subtitle:      d.Subtitle,
		Description:   d.Description,
		ClientName:    d.ClientName,
		TitleCount:    webtemplates.T(loc, "web.editor.char_count", utf8.RuneCountInString(d.Title), offer.MaxTitleLen),
		SubtitleCount: webtemplates.T(loc, "web.editor.char_count", utf8.RuneCountInString(d.Subtitle), offer.MaxSubtitleLen),
		WordCount:     webtemplates.T(loc, "web.editor.word_count", offer.WordCount(d.Description)),
		Amount:        strconv.FormatFloat(d.Price.Amount, 'f', -1, 64),
		Features:      append([]string{}, d.Features...),
		CanAddFeature: len(d.Features) < offer.MaxFeatures,
		FeatureCount:  webtemplates.T(loc, "web.editor.feature_count", len(d.Features), offer.MaxFeatures),
		LogoURL:       d.LogoURL,
		HeroURL:       d.Hero(),
	}
	for _, c := range offer.Currencies() {
		fields.Currencies = append(fields.Currencies, webtemplates.Option{
			Value:    string(c),
			Label:    webtemplates.T(loc, "web.currency."+string(c)),
			Selected: c == d.Price.Currency,
		})
	}
	for _, i := range offer.Intervals() {
		fields.Intervals = append(fields.Intervals, webtemplates.Option{
			Value:    string(i),
			Label:    webtemplates.T(loc, "web.interval."+string(i)),
			Selected: i == d.Price.Interval,
		})
	}
	for _, slot := range offer.ColorSlots() {
		fields.Colors = append(fields.Colors, webtemplates.ColorInput{
			Slot:  string(slot),
			Label: webtemplates.T(loc, "web.editor.color."+string(slot)),
			Value: d.BrandColors.Get(slot),
		})
	}
	return fields
}

// uploadErrorKey selects the message shown for a rejected document.
func uploadErrorKey(err error) string {
	switch {
	case errors.Is(err, upload.ErrEmpty):
		return "web.upload.error.empty"
	case errors.Is(err, upload.ErrTooLarge):
		return "web.upload.error.too_large"
	case errors.Is(err, upload.ErrUnsupported):
		return "web.upload.error.unsupported"
	default:
		return "web.upload.error.unreadable"
	}
}
