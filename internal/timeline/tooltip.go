package timeline

// Tooltip anchor positions. The anchor decides which way the floating time
// label grows from its boundary marker.
type Anchor string

const (
	AnchorCenter Anchor = "center"
	AnchorLeft   Anchor = "left"
	AnchorRight  Anchor = "right"
)

// TooltipBox is the measured geometry of one slot's floating time label.
// Offsets are pixels within the day's track.
type TooltipBox struct {
	Slot           int
	ContainerLeft  float64 // container's offset within the track
	ContainerWidth float64
	LabelOffset    float64 // label's offset within its container
	LabelWidth     float64
	Anchor         Anchor
	Visible        bool
}

// tooltip arrows hang 15px left of the container origin.
const tooltipArrowInset = 15

// labelBounds returns the horizontal extent the label covers for the box's
// current anchor.
func labelBounds(b TooltipBox) (float64, float64) {
	w := b.LabelWidth
	left := b.ContainerLeft + b.LabelOffset - tooltipArrowInset
	switch b.Anchor {
	case AnchorLeft:
		return left + w/2, left + 3*w/2
	case AnchorRight:
		return left - w/2, left + w/2
	default:
		return left, left + w
	}
}

// PlaceTooltips decides visibility and anchor for each slot label so the
// active slot's tooltip and its immediate left neighbour neither overflow
// the track nor overlap each other. Recomputed on every selection change and
// on resize.
func PlaceTooltips(boxes []TooltipBox, activeSlot int, fullWidth float64) []TooltipBox {
	out := append([]TooltipBox{}, boxes...)
	for i := range out {
		box := &out[i]
		if box.Slot != activeSlot && box.Slot-1 != activeSlot {
			box.Visible = false
			continue
		}
		if box.ContainerLeft < 0 || box.ContainerLeft > fullWidth+tooltipArrowInset {
			box.Visible = false
			continue
		}
		box.Visible = true

		lo, hi := labelBounds(*box)
		marginLeft := lo
		marginRight := fullWidth - hi

		// Reserve room for the neighbouring tooltip on the shared side.
		if i > 0 && box.Slot-1 == activeSlot {
			_, prevHi := labelBounds(out[i-1])
			marginLeft -= prevHi
		} else if i+1 < len(out) && box.Slot == activeSlot {
			nextLo, _ := labelBounds(out[i+1])
			if nextLo >= 0 {
				marginRight -= fullWidth - nextLo
			}
		}

		if marginLeft < marginRight {
			if marginLeft < 0 {
				if box.Anchor == AnchorCenter && marginRight > box.ContainerWidth/2 {
					box.Anchor = AnchorRight
				}
			} else {
				box.Anchor = AnchorCenter
			}
		} else {
			if marginRight < 0 {
				if box.Anchor == AnchorCenter && marginLeft > box.ContainerWidth/2 {
					box.Anchor = AnchorLeft
				}
			} else {
				box.Anchor = AnchorCenter
			}
		}
	}
	return out
}
