package models

import "gorm.io/gorm"

// GlossaryTerm explains a finance term to the user.
type GlossaryTerm struct {
	DefaultModel
	GlossaryTermCreate
}

type GlossaryTermCreate struct {
	Term       string `json:"term" example:"Net Worth"`
	Definition string `json:"definition" example:"The value of everything you own minus everything you owe."`
}

type GlossaryTermPatch struct {
	Term       *string
	Definition *string
}

func (g GlossaryTerm) Apply(p GlossaryTermPatch) GlossaryTerm {
	if p.Term != nil {
		g.Term = *p.Term
	}
	if p.Definition != nil {
		g.Definition = *p.Definition
	}
	return g
}

func (g *GlossaryTerm) Clean() {
	g.Term = cleanText(g.Term)
	g.Definition = cleanText(g.Definition)
}

func (g GlossaryTerm) Validate() error {
	if g.Term == "" {
		return ErrTermEmpty
	}

	if g.Definition == "" {
		return ErrDefinitionEmpty
	}

	return nil
}

func (g *GlossaryTerm) BeforeSave(_ *gorm.DB) (err error) {
	g.Clean()
	return nil
}
