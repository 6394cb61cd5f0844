package servertab

import "strconv"

// badgeCap is the largest count rendered verbatim; anything above is rendered
// as badgeOverflow.
const (
	badgeCap      = 999
	badgeOverflow = "1K+"
)

// Badge is a tab's unread count.
type Badge struct {
	count  int
	label  string
	active bool
}

func newBadge() Badge {
	var b Badge
	b.Update(0)
	return b
}

// Update sets the unread count. Negative counts are treated as zero.
func (b *Badge) Update(count int) {
	count = max(0, count)
	b.count = count
	b.active = count > 0
	if count > badgeCap {
		b.label = badgeOverflow
	} else {
		b.label = strconv.Itoa(count)
	}
}

func (b Badge) Count() int { return b.count }

func (b Badge) Label() string { return b.label }

// Active is true when there are unread messages.
func (b Badge) Active() bool { return b.active }

func (b Badge) View() string {
	if !b.active {
		return ""
	}
	return badgeStyle.Render(b.label)
}
