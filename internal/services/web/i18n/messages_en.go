package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Chrome
	message.SetString(lang, "web.app.name", "CloseALead")
	message.SetString(lang, "web.meta.description", "Build polished offer presentations that close deals.")
	message.SetString(lang, "web.footer.tagline", "Offer presentations that close.")
	message.SetString(lang, "web.nav.pricing", "Pricing")
	message.SetString(lang, "web.nav.dashboard", "Dashboard")
	message.SetString(lang, "web.nav.create", "New offer")
	message.SetString(lang, "web.nav.login", "Sign in")
	message.SetString(lang, "web.nav.signup", "Get started")
	message.SetString(lang, "web.nav.logout", "Sign out")

	// Landing page
	message.SetString(lang, "web.landing.title", "Offer presentations that close")
	message.SetString(lang, "web.landing.headline", "Turn your service into an offer clients say yes to")
	message.SetString(lang, "web.landing.lead", "Answer a few questions or upload your current offer. We build a presentation you can brand, price and share in minutes.")
	message.SetString(lang, "web.landing.cta_signup", "Start for free")
	message.SetString(lang, "web.landing.cta_create", "Create an offer")
	message.SetString(lang, "web.landing.cta_pricing", "See pricing")
	message.SetString(lang, "web.landing.features_heading", "Everything you need to present an offer")
	message.SetString(lang, "web.landing.feature.design", "Guided builder that drafts your copy from a short interview")
	message.SetString(lang, "web.landing.feature.redesign", "Upload an existing offer and get a redesigned version")
	message.SetString(lang, "web.landing.feature.templates", "Four presentation templates for every kind of client")
	message.SetString(lang, "web.landing.feature.brand", "Your colors, logo and hero imagery")
	message.SetString(lang, "web.landing.feature.export", "Export a print ready document")
	message.SetString(lang, "web.landing.feature.tracking", "Track offers and edits from one dashboard")

	// Pricing page
	message.SetString(lang, "web.pricing.title", "Pricing")
	message.SetString(lang, "web.pricing.heading", "Simple plans for every stage")
	message.SetString(lang, "web.pricing.lead", "Start free and upgrade when you need more offers.")
	message.SetString(lang, "web.pricing.monthly", "Monthly")
	message.SetString(lang, "web.pricing.annual", "Annual")
	message.SetString(lang, "web.pricing.amount", "$%v")
	message.SetString(lang, "web.pricing.per_month", "/month")
	message.SetString(lang, "web.pricing.billed_annually", "Billed $%v annually")
	message.SetString(lang, "web.pricing.popular", "Most popular")
	message.SetString(lang, "web.pricing.choose", "Choose plan")
	message.SetString(lang, "web.pricing.current_plan", "Current plan")
	message.SetString(lang, "web.pricing.go_dashboard", "Go to dashboard")

	// Plans
	message.SetString(lang, "plan.free.name", "Free")
	message.SetString(lang, "plan.professional.name", "Professional")
	message.SetString(lang, "plan.enterprise.name", "Agency")
	message.SetString(lang, "plan.free.feature.offers", "1 offer")
	message.SetString(lang, "plan.free.feature.edits", "5 edits per offer")
	message.SetString(lang, "plan.professional.feature.offers", "4 offers")
	message.SetString(lang, "plan.professional.feature.edits", "15 edits per offer")
	message.SetString(lang, "plan.enterprise.feature.offers", "Unlimited offers")
	message.SetString(lang, "plan.enterprise.feature.edits", "Unlimited edits")
	message.SetString(lang, "plan.enterprise.feature.support", "Priority support")
	message.SetString(lang, "plan.feature.templates", "All presentation templates")
	message.SetString(lang, "plan.feature.pdf", "Document export")
	message.SetString(lang, "plan.feature.branding", "Custom branding")
	message.SetString(lang, "plan.feature.assistant", "Guided offer assistant")

	// Auth pages
	message.SetString(lang, "web.login.title", "Sign in")
	message.SetString(lang, "web.login.heading", "Welcome back")
	message.SetString(lang, "web.login.submit", "Sign in")
	message.SetString(lang, "web.login.no_account", "New here?")
	message.SetString(lang, "web.signup.title", "Create your account")
	message.SetString(lang, "web.signup.heading", "Create your account")
	message.SetString(lang, "web.signup.plan", "Plan")
	message.SetString(lang, "web.signup.password_hint", "At least 8 characters with an uppercase letter and a number.")
	message.SetString(lang, "web.signup.terms", "I agree to the terms of service")
	message.SetString(lang, "web.signup.submit", "Create account")
	message.SetString(lang, "web.signup.have_account", "Already have an account?")
	message.SetString(lang, "web.auth.name", "Full name")
	message.SetString(lang, "web.auth.email", "Email")
	message.SetString(lang, "web.auth.password", "Password")
	message.SetString(lang, "web.auth.confirm_password", "Confirm password")

	// Validation
	message.SetString(lang, "web.validation.name_short", "Name must be at least 2 characters.")
	message.SetString(lang, "web.validation.email_required", "Email is required.")
	message.SetString(lang, "web.validation.email_invalid", "Enter a valid email address.")
	message.SetString(lang, "web.validation.password_required", "Password is required.")
	message.SetString(lang, "web.validation.password_weak", "Password needs 8 characters, an uppercase letter and a number.")
	message.SetString(lang, "web.validation.password_mismatch", "Passwords do not match.")
	message.SetString(lang, "web.validation.terms_required", "You must accept the terms.")
	message.SetString(lang, "web.validation.plan_unknown", "Choose one of the available plans.")

	// Dashboard
	message.SetString(lang, "web.dashboard.title", "Dashboard")
	message.SetString(lang, "web.dashboard.greeting", "Welcome back, %s")
	message.SetString(lang, "web.dashboard.new_offer", "New offer")
	message.SetString(lang, "web.dashboard.upgrade", "Upgrade")
	message.SetString(lang, "web.dashboard.upgrade_to_create", "Upgrade to create more offers")
	message.SetString(lang, "web.dashboard.stat.offers", "Offers")
	message.SetString(lang, "web.dashboard.stat.of_limit", "of %d on your plan")
	message.SetString(lang, "web.dashboard.stat.unlimited_offers", "Unlimited offers")
	message.SetString(lang, "web.dashboard.stat.edits_remaining", "Edits remaining")
	message.SetString(lang, "web.dashboard.stat.plan", "Plan")
	message.SetString(lang, "web.dashboard.unlimited", "Unlimited")
	message.SetString(lang, "web.dashboard.untitled", "Untitled offer")
	message.SetString(lang, "web.dashboard.created", "Created %s")
	message.SetString(lang, "web.dashboard.edits_used", "%d/%d edits used")
	message.SetString(lang, "web.dashboard.edits_left", "%d left")
	message.SetString(lang, "web.dashboard.edits_unlimited", "%d edits")
	message.SetString(lang, "web.dashboard.edit", "Edit")
	message.SetString(lang, "web.dashboard.delete", "Delete")
	message.SetString(lang, "web.dashboard.delete_confirm", "Delete this offer? This cannot be undone.")
	message.SetString(lang, "web.dashboard.empty_heading", "No offers yet")
	message.SetString(lang, "web.dashboard.empty_body", "Create your first offer presentation to get started.")
	message.SetString(lang, "web.dashboard.load_failed", "We could not load your offers. Try again in a moment.")

	// Wizard
	message.SetString(lang, "web.creator.title", "Create an offer")
	message.SetString(lang, "web.creator.step.mode", "Start")
	message.SetString(lang, "web.creator.step.input", "Details")
	message.SetString(lang, "web.creator.step.template", "Template")
	message.SetString(lang, "web.creator.step.customize", "Customize")
	message.SetString(lang, "web.creator.mode.heading", "How do you want to start?")
	message.SetString(lang, "web.creator.mode.scratch.title", "Create from scratch")
	message.SetString(lang, "web.creator.mode.scratch.summary", "Answer a few questions and we draft the offer for you.")
	message.SetString(lang, "web.creator.mode.redesign.title", "Redesign an existing offer")
	message.SetString(lang, "web.creator.mode.redesign.summary", "Upload your current offer and get an improved version.")
	message.SetString(lang, "web.creator.template.heading", "Choose a template")
	message.SetString(lang, "web.creator.template.best_for", "Best for: %s")
	message.SetString(lang, "web.creator.template.recommended", "Recommended")
	message.SetString(lang, "web.creator.start_over", "Start over")
	message.SetString(lang, "web.creator.notice.price_invalid", "The price must be a number. It was set to 0.")
	message.SetString(lang, "web.creator.notice.save_failed", "We could not save your offer.")

	// Guided interview
	message.SetString(lang, "web.guided.heading", "Tell us about your offer")
	message.SetString(lang, "web.guided.intro", "Hi! I will ask a few questions to draft your offer.")
	message.SetString(lang, "web.guided.progress", "Question %d of %d")
	message.SetString(lang, "web.guided.placeholder", "Type your answer")
	message.SetString(lang, "web.guided.send", "Send")
	message.SetString(lang, "web.guided.error.empty", "Please type an answer to continue.")
	message.SetString(lang, "web.guided.prompt.service_name", "What is the name of your service?")
	message.SetString(lang, "web.guided.prompt.target_audience", "Who is this offer for?")
	message.SetString(lang, "web.guided.prompt.problem_solved", "What problem does it solve for them?")
	message.SetString(lang, "web.guided.prompt.pricing", "How much do you charge?")
	message.SetString(lang, "web.guided.prompt.features", "What is included? List the main deliverables.")
	message.SetString(lang, "web.guided.prompt.unique_value", "What makes you different from the alternatives?")
	message.SetString(lang, "web.guided.prompt.guarantees", "Do you offer any guarantee?")
	message.SetString(lang, "web.guided.prompt.brand_personality", "How would you describe your brand personality?")

	// Upload
	message.SetString(lang, "web.upload.heading", "Upload your current offer")
	message.SetString(lang, "web.upload.lead", "We read your document and propose a redesigned offer.")
	message.SetString(lang, "web.upload.choose", "Choose a file")
	message.SetString(lang, "web.upload.hint", "PDF, DOCX or TXT up to 10MB.")
	message.SetString(lang, "web.upload.submit", "Upload and continue")
	message.SetString(lang, "web.upload.error.empty", "Choose a file to upload.")
	message.SetString(lang, "web.upload.error.too_large", "The file is larger than 10MB.")
	message.SetString(lang, "web.upload.error.unsupported", "Upload a PDF, DOCX or TXT document.")
	message.SetString(lang, "web.upload.error.unreadable", "We could not read that file. Try another one.")

	// Templates
	message.SetString(lang, "template.modern.name", "Modern")
	message.SetString(lang, "template.modern.summary", "Clean layout with a gradient hero.")
	message.SetString(lang, "template.modern.best_for", "Consultants and agencies")
	message.SetString(lang, "template.bold.name", "Bold")
	message.SetString(lang, "template.bold.summary", "High contrast with strong headlines.")
	message.SetString(lang, "template.bold.best_for", "Coaches and creators")
	message.SetString(lang, "template.elegant.name", "Elegant")
	message.SetString(lang, "template.elegant.summary", "Refined serif typography on a light canvas.")
	message.SetString(lang, "template.elegant.best_for", "Premium and luxury services")
	message.SetString(lang, "template.vibrant.name", "Vibrant")
	message.SetString(lang, "template.vibrant.summary", "Playful colors and rounded cards.")
	message.SetString(lang, "template.vibrant.best_for", "Creative studios")

	// Editor
	message.SetString(lang, "web.editor.heading_new", "Customize your offer")
	message.SetString(lang, "web.editor.heading_edit", "Edit offer")
	message.SetString(lang, "web.editor.tab.content", "Content")
	message.SetString(lang, "web.editor.tab.pricing", "Pricing")
	message.SetString(lang, "web.editor.tab.features", "Features")
	message.SetString(lang, "web.editor.tab.branding", "Branding")
	message.SetString(lang, "web.editor.tab.images", "Images")
	message.SetString(lang, "web.editor.client_name", "Client name")
	message.SetString(lang, "web.editor.client_name_placeholder", "Who is this offer for?")
	message.SetString(lang, "web.editor.title", "Title")
	message.SetString(lang, "web.editor.title_placeholder", "Your offer title")
	message.SetString(lang, "web.editor.subtitle", "Subtitle")
	message.SetString(lang, "web.editor.subtitle_placeholder", "A short promise")
	message.SetString(lang, "web.editor.description", "Description")
	message.SetString(lang, "web.editor.description_placeholder", "Describe the offer in detail")
	message.SetString(lang, "web.editor.char_count", "%d/%d")
	message.SetString(lang, "web.editor.word_count", "%d words")
	message.SetString(lang, "web.editor.amount", "Price")
	message.SetString(lang, "web.editor.currency", "Currency")
	message.SetString(lang, "web.editor.interval", "Billing")
	message.SetString(lang, "web.editor.feature_label", "Feature %d")
	message.SetString(lang, "web.editor.feature_count", "%d of %d features")
	message.SetString(lang, "web.editor.add_feature", "Add feature")
	message.SetString(lang, "web.editor.remove_feature", "Remove")
	message.SetString(lang, "web.editor.color.primary", "Primary color")
	message.SetString(lang, "web.editor.color.secondary", "Secondary color")
	message.SetString(lang, "web.editor.color.accent", "Accent color")
	message.SetString(lang, "web.editor.logo_url", "Logo URL")
	message.SetString(lang, "web.editor.hero_url", "Hero image URL")
	message.SetString(lang, "web.editor.hero_hint", "Leave empty to remove the hero image.")
	message.SetString(lang, "web.editor.apply", "Apply")
	message.SetString(lang, "web.editor.preview", "Live preview")
	message.SetString(lang, "web.editor.save_new", "Save offer")
	message.SetString(lang, "web.editor.save_changes", "Save changes")
	message.SetString(lang, "web.editor.export", "Export document")
	message.SetString(lang, "web.editor.discard", "Discard changes")
	message.SetString(lang, "web.editor.edits_remaining", "%d of %d edits left")
	message.SetString(lang, "web.editor.edits_unlimited", "Unlimited edits")
	message.SetString(lang, "web.currency.USD", "USD ($)")
	message.SetString(lang, "web.currency.EUR", "EUR (€)")
	message.SetString(lang, "web.currency.GBP", "GBP (£)")
	message.SetString(lang, "web.currency.CAD", "CAD ($)")
	message.SetString(lang, "web.interval.one-time", "One-time")
	message.SetString(lang, "web.interval.monthly", "Monthly")
	message.SetString(lang, "web.interval.annually", "Annually")

	// Flash notices
	message.SetString(lang, "web.flash.signed_in", "Welcome back!")
	message.SetString(lang, "web.flash.welcome", "Your account is ready.")
	message.SetString(lang, "web.flash.signed_out", "You have been signed out.")
	message.SetString(lang, "web.flash.offer_saved", "Offer saved.")
	message.SetString(lang, "web.flash.offer_updated", "Changes saved.")
	message.SetString(lang, "web.flash.offer_save_failed", "We could not save your offer.")
	message.SetString(lang, "web.flash.offer_load_failed", "We could not open that offer.")
	message.SetString(lang, "web.flash.offer_deleted", "Offer deleted.")
	message.SetString(lang, "web.flash.offer_delete_failed", "We could not delete that offer.")
	message.SetString(lang, "web.flash.offer_limit", "You have reached the offer limit of your plan. Upgrade to create more.")
	message.SetString(lang, "web.flash.export_failed", "We could not export that offer.")
	message.SetString(lang, "web.flash.edits_discarded", "Unsaved changes were discarded.")

	// Errors
	message.SetString(lang, "web.errors.backend_unavailable", "The service is unavailable. Try again in a moment.")
	message.SetString(lang, "web.errors.invalid_credentials", "Email or password is incorrect.")
	message.SetString(lang, "web.errors.invalid_request", "The request could not be read.")
	message.SetString(lang, "web.errors.conflict", "That request conflicts with the current state.")
	message.SetString(lang, "web.errors.invalid_step", "That action is not available at this step.")
	message.SetString(lang, "web.errors.draft_store_failed", "We could not keep your draft. Try again.")
	message.SetString(lang, "web.errors.offer_not_found", "Offer not found.")
	message.SetString(lang, "web.errors.offer_limit", "You have reached the offer limit of your plan.")
	message.SetString(lang, "web.errors.edit_limit", "This offer has no edits left on your plan.")
	message.SetString(lang, "web.errors.preview_failed", "The preview could not be rendered.")
	message.SetString(lang, "web.errors.unknown_mode", "Choose how you want to start.")
	message.SetString(lang, "web.errors.unknown_template", "Choose one of the available templates.")
	message.SetString(lang, "web.error.page_title_not_found", "Page not found")
	message.SetString(lang, "web.error.page_title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.title_not_found", "We could not find that page")
	message.SetString(lang, "web.error.title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.message_not_found", "The page you are looking for does not exist.")
	message.SetString(lang, "web.error.message_server_error", "Please try again in a moment.")
	message.SetString(lang, "web.error.action_back_to_dashboard", "Back to dashboard")
}
