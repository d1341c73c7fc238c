package models

// EnumMember is one allowed value of a closed-set methodology field.
// It carries the machine value interpolated into templates and the display
// label shown to users, so callers never have to split display strings.
type EnumMember struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// EnumSet is the closed set of members for one methodology field.
type EnumSet struct {
	Name    string
	Members []EnumMember
}

// Find returns the member whose machine value matches, if any.
func (s EnumSet) Find(value string) (EnumMember, bool) {
	for _, m := range s.Members {
		if m.Value == value {
			return m, true
		}
	}
	return EnumMember{}, false
}

// Values returns the machine values of all members, in declaration order.
func (s EnumSet) Values() []string {
	values := make([]string, len(s.Members))
	for i, m := range s.Members {
		values[i] = m.Value
	}
	return values
}

// Stages is the CDM decision-journey enum: where a stakeholder sits in the
// customer decision model.
var Stages = EnumSet{
	Name: "stages",
	Members: []EnumMember{
		{Value: "1-Need", Label: "Need"},
		{Value: "2-Sourcing", Label: "Sourcing"},
		{Value: "3-Selected", Label: "Selected"},
		{Value: "4-Ordered", Label: "Ordered"},
		{Value: "5-Usage", Label: "Usage"},
		{Value: "6-Adoption", Label: "Adoption"},
		{Value: "7-Assess", Label: "Assess"},
	},
}

// Roles is the RAID enum: a stakeholder's functional role in the buying
// decision.
var Roles = EnumSet{
	Name: "roles",
	Members: []EnumMember{
		{Value: "Recommender", Label: "Recommender"},
		{Value: "Agreer", Label: "Agreer"},
		{Value: "Informer", Label: "Informer"},
		{Value: "Decision Maker", Label: "Decision Maker"},
	},
}

// Viewpoints is the RUBIE enum: a stakeholder's personal point of view on
// the purchase.
var Viewpoints = EnumSet{
	Name: "viewpoints",
	Members: []EnumMember{
		{Value: "Ripple", Label: "Ripple"},
		{Value: "User", Label: "User"},
		{Value: "Benefactor", Label: "Benefactor"},
		{Value: "Implementor", Label: "Implementor"},
		{Value: "Economic Buyer", Label: "Economic Buyer"},
	},
}

var enumSets = map[string]EnumSet{
	Stages.Name:     Stages,
	Roles.Name:      Roles,
	Viewpoints.Name: Viewpoints,
}

// EnumSetByName looks up a registered enum set by its catalog name.
func EnumSetByName(name string) (EnumSet, bool) {
	set, ok := enumSets[name]
	return set, ok
}
