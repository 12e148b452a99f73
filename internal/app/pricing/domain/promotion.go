package domain

import (
	"time"
)

// PromotionType is the discount rule a promotion applies.
type PromotionType string

const (
	PromotionPercent PromotionType = "percent"
	PromotionFixed   PromotionType = "fixed"
)

// PromotionScope is the class of entities a promotion can apply to.
type PromotionScope string

const (
	ScopeAll      PromotionScope = "all"
	ScopeCategory PromotionScope = "category"
	ScopeProduct  PromotionScope = "product"
)

// Promotion is a read-only campaign record. Administrators create and edit
// promotions; the pricing engine only evaluates them.
type Promotion struct {
	id          string
	code        string // empty means automatic (site-wide), non-empty is redeemable at checkout
	name        string
	description string
	promoType   PromotionType
	scope       PromotionScope
	priority    int64
	value       *Money // percentage points for percent, currency amount for fixed
	targetIDs   map[string]struct{}
	startsAt    *time.Time
	endsAt      *time.Time
	isActive    bool
	createdAt   time.Time
}

// NewPromotion creates a validated Promotion (for administrative creation).
func NewPromotion(
	id, code, name, description string,
	promoType PromotionType,
	scope PromotionScope,
	priority int64,
	value *Money,
	targetIDs []string,
	startsAt, endsAt *time.Time,
	isActive bool,
	now time.Time,
) (*Promotion, error) {
	if name == "" {
		return nil, ErrEmptyPromotionName
	}

	switch promoType {
	case PromotionPercent, PromotionFixed:
	default:
		return nil, ErrInvalidPromotionType
	}

	switch scope {
	case ScopeAll, ScopeCategory, ScopeProduct:
	default:
		return nil, ErrInvalidPromotionScope
	}

	if value == nil || value.IsNegative() {
		return nil, ErrInvalidPromotionValue
	}
	if promoType == PromotionPercent {
		hundred, _ := NewMoney(100, 1)
		if value.GreaterThan(hundred) {
			return nil, ErrInvalidPromotionValue
		}
	}

	if scope != ScopeAll && len(targetIDs) == 0 {
		return nil, ErrMissingTargets
	}

	if startsAt != nil && endsAt != nil && endsAt.Before(*startsAt) {
		return nil, ErrInvalidPromotionWindow
	}

	return ReconstructPromotion(
		id, code, name, description,
		promoType, scope, priority, value,
		targetIDs, startsAt, endsAt, isActive, now,
	), nil
}

// ReconstructPromotion reconstitutes a Promotion from storage without
// re-validating. The calculator must tolerate whatever values the store
// holds, so reconstruction never fails.
func ReconstructPromotion(
	id, code, name, description string,
	promoType PromotionType,
	scope PromotionScope,
	priority int64,
	value *Money,
	targetIDs []string,
	startsAt, endsAt *time.Time,
	isActive bool,
	createdAt time.Time,
) *Promotion {
	targets := make(map[string]struct{}, len(targetIDs))
	for _, target := range targetIDs {
		targets[target] = struct{}{}
	}

	return &Promotion{
		id:          id,
		code:        code,
		name:        name,
		description: description,
		promoType:   promoType,
		scope:       scope,
		priority:    priority,
		value:       value.Copy(),
		targetIDs:   targets,
		startsAt:    startsAt,
		endsAt:      endsAt,
		isActive:    isActive,
		createdAt:   createdAt,
	}
}

// Getters
func (p *Promotion) ID() string            { return p.id }
func (p *Promotion) Code() string          { return p.code }
func (p *Promotion) Name() string          { return p.name }
func (p *Promotion) Description() string   { return p.description }
func (p *Promotion) Type() PromotionType   { return p.promoType }
func (p *Promotion) Scope() PromotionScope { return p.scope }
func (p *Promotion) Priority() int64       { return p.priority }
func (p *Promotion) Value() *Money         { return p.value.Copy() }
func (p *Promotion) StartsAt() *time.Time  { return p.startsAt }
func (p *Promotion) EndsAt() *time.Time    { return p.endsAt }
func (p *Promotion) IsActive() bool        { return p.isActive }
func (p *Promotion) CreatedAt() time.Time  { return p.createdAt }

// TargetIDs returns the target id set as a slice (order unspecified).
func (p *Promotion) TargetIDs() []string {
	ids := make([]string, 0, len(p.targetIDs))
	for id := range p.targetIDs {
		ids = append(ids, id)
	}
	return ids
}

// IsAutomatic reports whether the promotion applies without a checkout code.
func (p *Promotion) IsAutomatic() bool {
	return p.code == ""
}

// HasTarget reports whether the given entity id is in the target set.
func (p *Promotion) HasTarget(id string) bool {
	_, ok := p.targetIDs[id]
	return ok
}

// IsEffectiveAt reports whether the promotion is live at instant t: the
// manual kill switch is on and t falls inside the activity window. Window
// bounds are inclusive on both ends; a nil bound is unbounded.
func (p *Promotion) IsEffectiveAt(t time.Time) bool {
	if !p.isActive {
		return false
	}
	if p.startsAt != nil && t.Before(*p.startsAt) {
		return false
	}
	if p.endsAt != nil && t.After(*p.endsAt) {
		return false
	}
	return true
}

// AppliesTo reports whether the promotion's scope covers the product.
func (p *Promotion) AppliesTo(product *ProductSnapshot) bool {
	switch p.scope {
	case ScopeAll:
		return true
	case ScopeCategory:
		return product.CategoryID != "" && p.HasTarget(product.CategoryID)
	case ScopeProduct:
		return p.HasTarget(product.ID)
	default:
		return false
	}
}
