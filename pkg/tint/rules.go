package tint

import (
	"fmt"
	"slices"

	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
)

// PolicyKind says how an asset is tinted.
type PolicyKind int

const (
	NoTint        PolicyKind = iota // Returned as loaded
	SingleColor                     // One color filter from a theme attribute
	StateList                       // State dependent colors from the default state list
	Container                       // Children are tinted, the container itself is not
	AlreadyTinted                   // Asset carries its own colors; never decorated
)

func (k PolicyKind) String() string {
	switch k {
	case NoTint:
		return "none"
	case SingleColor:
		return "single_color"
	case StateList:
		return "state_list"
	case Container:
		return "container"
	case AlreadyTinted:
		return "already_tinted"
	default:
		return fmt.Sprintf("PolicyKind(%d)", int(k))
	}
}

// ColorGroup names the single-color table an asset belongs to. Tables are
// disjoint, so an asset is in at most one group.
type ColorGroup int

const (
	GroupNone ColorGroup = iota
	GroupControlNormal
	GroupControlActivated
	GroupBackgroundMultiply
)

// Policy is the tint decision for one asset.
type Policy struct {
	Kind      PolicyKind
	Group     ColorGroup          // SingleColor only
	Attribute constants.Attribute // SingleColor only
	Mode      BlendMode           // SingleColor only
}

func ControlNormal() Policy {
	return Policy{Kind: SingleColor, Group: GroupControlNormal, Attribute: constants.AttrColorControlNormal, Mode: DefaultMode}
}

func ControlActivated() Policy {
	return Policy{Kind: SingleColor, Group: GroupControlActivated, Attribute: constants.AttrColorControlActivated, Mode: DefaultMode}
}

func BackgroundMultiply() Policy {
	return Policy{Kind: SingleColor, Group: GroupBackgroundMultiply, Attribute: constants.AttrColorBackground, Mode: BlendMultiply}
}

// Rule assigns one policy to a set of assets.
type Rule struct {
	Policy Policy
	IDs    []constants.AssetID
}

// RuleTable classifies asset ids. It is immutable once built.
type RuleTable struct {
	policies map[constants.AssetID]Policy
}

// NewRuleTable builds a table from rules. Every id may appear only once across
// all rules; a repeat fails with ErrDuplicateAsset.
func NewRuleTable(rules ...Rule) (*RuleTable, error) {
	policies := make(map[constants.AssetID]Policy)

	for _, rule := range rules {
		for _, id := range rule.IDs {
			if existing, ok := policies[id]; ok {
				return nil, fmt.Errorf("%w: asset %d is %s and %s", ErrDuplicateAsset, id, existing.Kind, rule.Policy.Kind)
			}
			policies[id] = rule.Policy
		}
	}

	return &RuleTable{policies: policies}, nil
}

// MustRuleTable is NewRuleTable for tables known at compile time. It panics on error.
func MustRuleTable(rules ...Rule) *RuleTable {
	table, err := NewRuleTable(rules...)
	if err != nil {
		panic(err)
	}
	return table
}

// Classify returns the policy for id. Unknown ids are NoTint.
func (t *RuleTable) Classify(id constants.AssetID) Policy {
	if policy, ok := t.policies[id]; ok {
		return policy
	}
	return Policy{Kind: NoTint}
}

// IDs returns the sorted ids classified with kind.
func (t *RuleTable) IDs(kind PolicyKind) []constants.AssetID {
	var ids []constants.AssetID
	for id, policy := range t.policies {
		if policy.Kind == kind {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func (t *RuleTable) Len() int {
	return len(t.policies)
}

var defaultRules = MustRuleTable(
	Rule{Policy: ControlNormal(), IDs: []constants.AssetID{
		constants.IconBack,
		constants.IconGoSearch,
		constants.IconSearch,
		constants.IconCommitSearch,
		constants.IconClear,
		constants.IconMenuShare,
		constants.IconMenuOverflow,
		constants.IconVoiceSearch,
		constants.TextFieldSearchDefault,
		constants.TextFieldDefault,
		constants.ListDivider,
	}},
	Rule{Policy: ControlActivated(), IDs: []constants.AssetID{
		constants.TextFieldActivated,
		constants.ActionBarBackgroundTop,
	}},
	Rule{Policy: BackgroundMultiply(), IDs: []constants.AssetID{
		constants.PopupBackground,
		constants.ActionBarBackgroundInternal,
	}},
	Rule{Policy: Policy{Kind: StateList}, IDs: []constants.AssetID{
		constants.EditText,
		constants.TabIndicator,
		constants.TextFieldSearch,
		constants.Spinner,
	}},
	Rule{Policy: Policy{Kind: Container}, IDs: []constants.AssetID{
		constants.ActionBarBackgroundTopLayered,
	}},
)

// DefaultRules returns the built-in classification of the constants asset ids.
func DefaultRules() *RuleTable {
	return defaultRules
}
