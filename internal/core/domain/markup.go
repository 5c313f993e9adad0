package domain

import "time"

const (
	claimedBanner = "\n\n\n<b>>>>>>>>>>>[ALL GONE]>>>>>>>>>></b>\n"
	closedBanner  = "\n\n<b><<<<<<<<<<[CLOSED]<<<<<<<<<<</b>"
	updateBanner  = "\n\n\n<b>>>>>>>>>>>[UPDATE]>>>>>>>>>></b>"

	updateTimeLayout = "2006-01-02 15:04 MST"
)

// Close appends the closure marker to the description and marks the item claimed.
func (i *Item) Close(by string, at time.Time) {
	i.Description += claimedBanner + "\n\n <b>By:</b> " + by + closedBanner
	i.Claimed = true
	i.ModifiedAt = at
}

// AppendUpdate appends a timestamped note quoting the sender and body. Claimed is left untouched.
func (i *Item) AppendUpdate(from, text string, at time.Time) {
	i.Description += updateBanner + " <i>" + at.Format(updateTimeLayout) + "</i>\n" +
		text + "\n\n <b>From:</b> " + from
	i.ModifiedAt = at
}
