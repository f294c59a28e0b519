package public

import (
	"context"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/louisbranch/closealead/internal/plan"
	"github.com/louisbranch/closealead/internal/services/web/integration/offersapi"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
)

const (
	minNameRunes      = 2
	minPasswordLength = 8
)

// Validation message keys, indexed by form field.
const (
	keyNameShort        = "web.validation.name_short"
	keyEmailRequired    = "web.validation.email_required"
	keyEmailInvalid     = "web.validation.email_invalid"
	keyPasswordRequired = "web.validation.password_required"
	keyPasswordWeak     = "web.validation.password_weak"
	keyPasswordMismatch = "web.validation.password_mismatch"
	keyTermsRequired    = "web.validation.terms_required"
	keyPlanUnknown      = "web.validation.plan_unknown"
)

type loginInput struct {
	Email    string
	Password string
}

type signupInput struct {
	Name     string
	Email    string
	Password string
	Confirm  string
	Plan     string
	Terms    bool
}

// fieldErrors maps a form field to a validation message key.
type fieldErrors map[string]string

type service struct {
	gateway AuthGateway
}

func newService(gateway AuthGateway) service {
	return service{gateway: gateway}
}

func (in loginInput) validate() fieldErrors {
	errs := fieldErrors{}
	if strings.TrimSpace(in.Email) == "" {
		errs["email"] = keyEmailRequired
	}
	if in.Password == "" {
		errs["password"] = keyPasswordRequired
	}
	return errs
}

func (in signupInput) validate() fieldErrors {
	errs := fieldErrors{}
	if utf8.RuneCountInString(strings.TrimSpace(in.Name)) < minNameRunes {
		errs["name"] = keyNameShort
	}
	switch email := strings.TrimSpace(in.Email); {
	case email == "":
		errs["email"] = keyEmailRequired
	case !validEmail(email):
		errs["email"] = keyEmailInvalid
	}
	switch {
	case in.Password == "":
		errs["password"] = keyPasswordRequired
	case !strongPassword(in.Password):
		errs["password"] = keyPasswordWeak
	}
	if in.Confirm != in.Password {
		errs["confirm_password"] = keyPasswordMismatch
	}
	if !in.Terms {
		errs["terms"] = keyTermsRequired
	}
	if _, ok := plan.Parse(in.Plan); !ok {
		errs["plan"] = keyPlanUnknown
	}
	return errs
}

// validEmail accepts a bare address whose domain has a dot.
func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	at := strings.LastIndex(value, "@")
	domain := value[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

func strongPassword(value string) bool {
	if utf8.RuneCountInString(value) < minPasswordLength {
		return false
	}
	var upper, digit bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && digit
}

func (s service) login(ctx context.Context, in loginInput) (websession.Identity, error) {
	user, err := s.gateway.Login(ctx, offersapi.Credentials{
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
	})
	if err != nil {
		return websession.Identity{}, err
	}
	return identityFromUser(user), nil
}

func (s service) signup(ctx context.Context, in signupInput) (websession.Identity, error) {
	planID, _ := plan.Parse(in.Plan)
	user, err := s.gateway.Signup(ctx, offersapi.Registration{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		Plan:     planID.BackendName(),
	})
	if err != nil {
		return websession.Identity{}, err
	}
	return identityFromUser(user), nil
}

func identityFromUser(user offersapi.User) websession.Identity {
	return websession.Identity{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Plan:       user.Plan,
		OfferCount: user.OfferCount,
		Token:      user.Token,
	}
}
