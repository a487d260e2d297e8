package timeline

import (
	"testing"
)

const trackWidth = 480

func centeredBox(slot int, containerLeft float64) TooltipBox {
	return TooltipBox{
		Slot:           slot,
		ContainerLeft:  containerLeft,
		ContainerWidth: 60,
		LabelOffset:    40,
		LabelWidth:     40,
		Anchor:         AnchorCenter,
	}
}

func TestPlaceTooltips_OnlyActivePairVisible(t *testing.T) {
	boxes := []TooltipBox{
		centeredBox(0, 50), centeredBox(1, 150), centeredBox(2, 250), centeredBox(3, 350),
	}
	out := PlaceTooltips(boxes, 1, trackWidth)
	wantVisible := map[int]bool{1: true, 2: true}
	for _, b := range out {
		if b.Visible != wantVisible[b.Slot] {
			t.Fatalf("slot %d visible = %v, want %v", b.Slot, b.Visible, wantVisible[b.Slot])
		}
	}
}

func TestPlaceTooltips_OffTrackBoxesHidden(t *testing.T) {
	boxes := []TooltipBox{centeredBox(0, -5), centeredBox(1, trackWidth+tooltipArrowInset+1)}
	for _, active := range []int{0, 1} {
		out := PlaceTooltips(boxes, active, trackWidth)
		for _, b := range out {
			if b.Visible {
				t.Fatalf("box at %v should be hidden", b.ContainerLeft)
			}
		}
	}
}

func TestPlaceTooltips_CenterWhenRoomBothSides(t *testing.T) {
	out := PlaceTooltips([]TooltipBox{centeredBox(0, 200)}, 0, trackWidth)
	if !out[0].Visible || out[0].Anchor != AnchorCenter {
		t.Fatalf("got %+v, want a visible centred label", out[0])
	}
}

func TestPlaceTooltips_RightEdgeAnchorsLeft(t *testing.T) {
	out := PlaceTooltips([]TooltipBox{centeredBox(0, 460)}, 0, trackWidth)
	if out[0].Anchor != AnchorLeft {
		t.Fatalf("anchor = %q, want left growth at the right edge", out[0].Anchor)
	}
}

func TestPlaceTooltips_LeftEdgeAnchorsRight(t *testing.T) {
	box := centeredBox(0, 0)
	box.LabelOffset = 0
	out := PlaceTooltips([]TooltipBox{box}, 0, trackWidth)
	if out[0].Anchor != AnchorRight {
		t.Fatalf("anchor = %q, want right growth at the left edge", out[0].Anchor)
	}
}

func TestPlaceTooltips_DoesNotMutateInput(t *testing.T) {
	boxes := []TooltipBox{centeredBox(0, 50)}
	_ = PlaceTooltips(boxes, 0, trackWidth)
	if boxes[0].Visible {
		t.Fatalf("input slice mutated")
	}
}
