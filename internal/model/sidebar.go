package model

// SidebarItemKind distinguishes selectable rows from visual separators.
type SidebarItemKind int

// Sidebar item kinds.
const (
	SidebarProposer SidebarItemKind = iota
	SidebarSeparator
)

// SeparatorLabel is what a separator row renders as.
const SeparatorLabel = "────────────"

// SidebarItem is one row of the proposer sidebar. Separators carry no
// proposer and exist only for rendering.
type SidebarItem struct {
	Label    string
	Proposer Proposer
	Kind     SidebarItemKind
}

// Selectable reports whether the item can become a selection.
func (i SidebarItem) Selectable() bool {
	return i.Kind == SidebarProposer
}

// SidebarLayout returns the sidebar rows: proposers grouped with a separator
// after each group.
func SidebarLayout() []SidebarItem {
	items := make([]SidebarItem, 0, len(catalog)+3)
	for i, entry := range catalog {
		items = append(items, SidebarItem{
			Kind:     SidebarProposer,
			Label:    entry.Label,
			Proposer: entry.Proposer,
		})
		last := i == len(catalog)-1
		if last || catalog[i+1].group != entry.group {
			items = append(items, SidebarItem{Kind: SidebarSeparator, Label: SeparatorLabel})
		}
	}
	return items
}
