package sheet

// VirtualTag keeps rules in memory only. It is the backend for headless
// generation contexts, where no container element and no rule engine
// exist; pipelines flush its contents themselves when they are done.
type VirtualTag struct {
	rules []string
}

// NewVirtualTag creates an empty in-memory rule buffer.
func NewVirtualTag() *VirtualTag {
	return &VirtualTag{}
}

// InsertRule splices rule into the list at index.
func (vt *VirtualTag) InsertRule(index int, rule string) bool {
	if index < 0 || index > len(vt.rules) {
		return false
	}
	vt.rules = append(vt.rules, "")
	copy(vt.rules[index+1:], vt.rules[index:])
	vt.rules[index] = rule
	return true
}

// InsertRules splices a batch into the list at startIndex. Every rule of
// a batch is accepted; nothing validates rule text at this layer.
func (vt *VirtualTag) InsertRules(startIndex int, rules []string) int {
	inserted := 0
	for _, rule := range rules {
		if vt.InsertRule(startIndex+inserted, rule) {
			inserted++
		}
	}
	return inserted
}

// DeleteRule removes the rule at index.
func (vt *VirtualTag) DeleteRule(index int) {
	vt.rules = append(vt.rules[:index], vt.rules[index+1:]...)
}

// GetRule returns the rule at index, or "" for an unpopulated index.
func (vt *VirtualTag) GetRule(index int) string {
	if index < 0 || index >= len(vt.rules) {
		return ""
	}
	return vt.rules[index]
}

// Length returns the number of stored rules.
func (vt *VirtualTag) Length() int {
	return len(vt.rules)
}

var _ Tag = &VirtualTag{}
