package leaveform_test

import (
	"testing"

	"github.com/OWENATOR-3000/staffPortal/internal/leaveform"
	"github.com/OWENATOR-3000/staffPortal/internal/pdfcanvas"
	"github.com/OWENATOR-3000/staffPortal/internal/pdfcanvas/pdfcanvastest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawChecklist(t *testing.T, req leaveform.LeaveRequest) *pdfcanvastest.Recorder {
	t.Helper()
	rec := pdfcanvastest.NewRecorder(pdfcanvas.A4)
	require.NoError(t, leaveform.NewRenderer("").LeaveChecklist(rec, req))
	return rec
}

func TestRenderer_LeaveChecklist(t *testing.T) {
	h := pageHeight
	gridY := h - 250

	req := fullRequest()
	req.ReasonType = strPtr("Sick Family")
	req.ReasonDetails = strPtr("Mother")

	rec := drawChecklist(t, req)

	t.Run("values sit on the paper lines", func(t *testing.T) {
		name := assertTextAt(t, rec, "Jane Doe", 162, h-140)
		assert.Equal(t, pdfcanvas.HelveticaBold, name.Font)
		assertTextAt(t, rec, "2026-03-01", 162, h-165)
		assertTextAt(t, rec, "John Smith", 162, h-190)
		assertTextAt(t, rec, "2026-03-10", 102, h-370)
		assertTextAt(t, rec, "2026-03-12", 282, h-370)
		assertTextAt(t, rec, "7.5", 162, h-395)
		assertTextAt(t, rec, "3", 412, h-395)
	})

	t.Run("matching reason is ticked with details", func(t *testing.T) {
		ticks := filterFont(rec, pdfcanvas.ZapfDingbats)
		require.Len(t, ticks, 1)
		assert.Equal(t, pdfcanvas.CheckMark, ticks[0].Text)
		assert.Equal(t, 51.0, ticks[0].X)
		assert.InDelta(t, gridY-40+1, ticks[0].Y, 1e-9)

		details := assertTextAt(t, rec, "Mother", 152, gridY-40)
		assert.Equal(t, 10.0, details.Size)
	})

	t.Run("signature and date", func(t *testing.T) {
		sig := filterFont(rec, pdfcanvas.HelveticaOblique)
		require.Len(t, sig, 1)
		assert.Equal(t, "Jane Doe", sig[0].Text)
		assert.Equal(t, 182.0, sig[0].X)
		assert.InDelta(t, h-435, sig[0].Y, 1e-9)

		var dated bool
		for _, op := range rec.Filter(pdfcanvastest.OpText) {
			if op.Text == "2026-03-01" && op.X == 392 {
				dated = true
			}
		}
		assert.True(t, dated)
	})

	t.Run("comments on the rules", func(t *testing.T) {
		blocks := rec.Filter(pdfcanvastest.OpTextBlock)
		require.Len(t, blocks, 1)
		assert.InDelta(t, h-513, blocks[0].Y, 1e-9)
		assert.Equal(t, []string{"Back on Friday", "Phone on"}, blocks[0].Lines)
	})
}

func TestRenderer_LeaveChecklist_Defaults(t *testing.T) {
	req := fullRequest()
	req.ReasonType = strPtr("Jury Duty")
	req.StartDate = strPtr("next monday")
	req.EmployeeSignatureName = nil
	req.Comments = nil

	rec := drawChecklist(t, req)

	assert.Empty(t, filterFont(rec, pdfcanvas.ZapfDingbats))
	assertTextAt(t, rec, "next monday", 102, pageHeight-370)
	assertTextAt(t, rec, "N/A", 412, pageHeight-395)
	assertTextAt(t, rec, "Digitally Signed", 182, pageHeight-435)
	assert.Empty(t, rec.Filter(pdfcanvastest.OpTextBlock))
	_, ok := rec.FindText("Moving house")
	assert.False(t, ok)
}
