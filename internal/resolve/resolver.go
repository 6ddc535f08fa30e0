package resolve

import (
	"context"
	"strconv"

	"github.com/samber/lo"

	"github.com/misbahyunus/python-gems/internal/api/postcode"
)

const (
	cityPrompt   = "Enter City name (replace any spaces with a hyphen) or postcode: "
	statePrompt  = "Enter State code (choose from VIC, NSW, WA, SA, NT, TAS): "
	choicePrompt = "Select a number from above (0 to quit) : "
)

type LocalityFinder interface {
	Lookup(ctx context.Context, postCode int) ([]postcode.Locality, error)
}

// Resolver obtains the parameters of a weather run from the command line
// arguments or, when there are none, from interactive prompts.
type Resolver struct {
	prompter *Prompter
	finder   LocalityFinder
}

func NewResolver(prompter *Prompter, finder LocalityFinder) *Resolver {
	return &Resolver{
		prompter: prompter,
		finder:   finder,
	}
}

func (r *Resolver) Resolve(ctx context.Context, args []string) (Parameters, error) {
	switch len(args) {
	case 0:
		return r.fromPrompt(ctx)
	case 2:
		return fromArgs(args[0], args[1])
	default:
		return Parameters{}, ErrUsage
	}
}

func fromArgs(state string, city string) (Parameters, error) {
	code, ok := NormalizeState(state)
	if !ok {
		return Parameters{}, &InvalidStateError{Input: state}
	}

	return Parameters{
		StateCode: code,
		CitySlug:  city,
		Source:    SourceArgs,
	}, nil
}

func (r *Resolver) fromPrompt(ctx context.Context) (Parameters, error) {
	city, err := r.prompter.Ask(cityPrompt)
	if err != nil {
		return Parameters{}, err
	}

	if isNumeric(city) {
		return r.fromPostcode(ctx, city)
	}

	state, err := r.prompter.Ask(statePrompt)
	if err != nil {
		return Parameters{}, err
	}

	code, ok := NormalizeState(state)
	if !ok {
		return Parameters{}, &InvalidStateError{Input: state, Interactive: true}
	}

	return Parameters{
		StateCode: code,
		CitySlug:  city,
		Source:    SourcePrompt,
	}, nil
}

func (r *Resolver) fromPostcode(ctx context.Context, input string) (Parameters, error) {
	postCode, err := strconv.Atoi(input)
	if err != nil {
		return Parameters{}, ErrInvalidPostcode
	}

	localities, err := r.finder.Lookup(ctx, postCode)
	if err != nil {
		return Parameters{}, err
	}

	var selected postcode.Locality
	switch len(localities) {
	case 0:
		return Parameters{}, ErrInvalidPostcode
	case 1:
		selected = localities[0]
	default:
		r.prompter.Say("Multiple locations found!")
		for i, locality := range localities {
			r.prompter.Say("%d. %s", i+1, locality.Name)
		}

		index, err := r.prompter.Choose(choicePrompt, len(localities))
		if err != nil {
			return Parameters{}, err
		}
		selected = localities[index]
	}

	return Parameters{
		StateCode: selected.StateCode(),
		CitySlug:  selected.Slug(),
		PostCode:  lo.ToPtr(postCode),
		Source:    SourcePostcode,
	}, nil
}
