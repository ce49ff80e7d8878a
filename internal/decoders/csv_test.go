package decoders

import (
	"bytes"
	"strings"
	"testing"
	"testing/iotest"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/models"
)

const header = "name,provider,status,cost,renewal,owner,category\n"

var now = time.Date(2025, 6, 25, 8, 50, 20, 0, time.UTC)

func TestDecodeSubscriptionsCSV_Example(t *testing.T) {
	input := header +
		"Spotify,Spotify,Active,9.99,2025-01-01,Jane,Music\n" +
		",,,,,,\n" +
		"Bad,Row"

	res, err := DecodeSubscriptionsCSV(strings.NewReader(input), now)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	got := res.Records[0]
	assert.Equal(t, int64(0), got.ID)
	assert.Equal(t, "Spotify", got.Name)
	assert.Equal(t, "Spotify", got.Provider)
	assert.Equal(t, "Active", got.Status)
	assert.Equal(t, "9.99", got.MonthlyCost.String())
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), got.RenewalDate)
	assert.Equal(t, "Jane", got.Owner)
	assert.Equal(t, "Music", got.Category)
	assert.Equal(t, now, got.CreatedAt)

	assert.Equal(t, []models.SkippedRow{
		{Line: 3, Reason: ReasonBlankLine},
		{Line: 4, Reason: "expected at least 7 fields, got 2"},
	}, res.Skipped)
	assert.Empty(t, res.Defaulted)
}

func TestDecodeSubscriptionsCSV_PreservesOrder(t *testing.T) {
	input := header +
		"Netflix,Netflix,Active,15.99,2025-02-01,John Doe,Entertainment\n" +
		"Notion,Notion,Active,4.00,2025-03-01,John Doe,Productivity\n" +
		"AWS Free Tier,Amazon Web Services,Trial,0.00,2025-04-01,John Doe,Cloud\n"

	res, err := DecodeSubscriptionsCSV(strings.NewReader(input), now)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Records))
	for _, r := range res.Records {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Netflix", "Notion", "AWS Free Tier"}, names)
	assert.Empty(t, res.Skipped)
}

func TestDecodeSubscriptionsCSV_Defaults(t *testing.T) {
	input := header + "Box,Box,Active,free,??,Ann,Cloud\n"

	res, err := DecodeSubscriptionsCSV(strings.NewReader(input), now)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.True(t, res.Records[0].MonthlyCost.IsZero())
	assert.Equal(t, now, res.Records[0].RenewalDate)
	assert.Equal(t, now, res.Records[0].CreatedAt)
	assert.Equal(t, []models.DefaultedField{
		{Line: 2, Field: "monthlyCost", Value: "free"},
		{Line: 2, Field: "renewalDate", Value: "??"},
	}, res.Defaulted)
}

func TestDecodeSubscriptionsCSV_SkipsWithoutError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "header only", input: header},
		{name: "empty input", input: ""},
		{name: "blank lines", input: header + "\n   \n\t\n"},
		{name: "short rows", input: header + "a,b,c\na,b,c,d,e,f\n"},
		{name: "empty fields", input: header + ",,,,,,\n , , , , , , \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := DecodeSubscriptionsCSV(strings.NewReader(tt.input), now)
			require.NoError(t, err)
			assert.Empty(t, res.Records)
		})
	}
}

func TestDecodeSubscriptionsCSV_HeaderNotValidated(t *testing.T) {
	input := "Spotify,Spotify,Active,9.99,2025-01-01,Jane,Music\n" +
		"Notion,Notion,Active,4.00,2025-03-01,John Doe,Productivity\n"

	res, err := DecodeSubscriptionsCSV(strings.NewReader(input), now)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "Notion", res.Records[0].Name)
}

func TestDecodeSubscriptionsCSV_NaiveSplit(t *testing.T) {
	// A quoted comma is not special: the row shifts by one field.
	input := header + `"Acme, Inc",Acme,Active,1.00,2025-01-01,Ann,Other` + "\n"

	res, err := DecodeSubscriptionsCSV(strings.NewReader(input), now)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, `"Acme`, res.Records[0].Name)
	assert.Equal(t, ` Inc"`, res.Records[0].Provider)
	assert.Equal(t, "Acme", res.Records[0].Status)
}

func TestDecodeSubscriptionsCSV_ExtraFieldsAndCRLF(t *testing.T) {
	input := "name,provider,status,cost,renewal,owner,category\r\n" +
		"Spotify,Spotify,Active, 9.99 ,2025-01-01,Jane,Music,extra\r\n"

	res, err := DecodeSubscriptionsCSV(strings.NewReader(input), now)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "9.99", res.Records[0].MonthlyCost.String())
	assert.Equal(t, "Music", res.Records[0].Category)
	assert.Empty(t, res.Defaulted)
}

func TestDecodeSubscriptionsCSV_NowConvertedToUTC(t *testing.T) {
	local := time.Date(2025, 6, 25, 11, 50, 20, 0, time.FixedZone("UTC+3", 3*60*60))
	input := header + "Box,Box,Active,1,??,Ann,Cloud\n"

	res, err := DecodeSubscriptionsCSV(strings.NewReader(input), local)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, time.UTC, res.Records[0].CreatedAt.Location())
	assert.True(t, now.Equal(res.Records[0].CreatedAt))
	assert.True(t, now.Equal(res.Records[0].RenewalDate))
}

func TestDecodeSubscriptionsCSV_ReadError(t *testing.T) {
	_, err := DecodeSubscriptionsCSV(iotest.ErrReader(assert.AnError), now)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDecodeSubscriptionsCSV_LineTooLongSkipped(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString(strings.Repeat("x", maxLineSize+1))
	buf.WriteString("\n")
	buf.WriteString("Spotify,Spotify,Active,9.99,2025-01-01,Jane,Music\n")

	res, err := DecodeSubscriptionsCSV(&buf, now)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "Spotify", res.Records[0].Name)
	assert.Equal(t, []models.SkippedRow{{Line: 2, Reason: ReasonLineTooLong}}, res.Skipped)
}

func TestDecodeSubscriptionsCSV_LongLineWithinLimit(t *testing.T) {
	name := strings.Repeat("n", 200*1024)
	input := header + name + ",Acme,Active,1,2025-01-01,Ann,Other"

	res, err := DecodeSubscriptionsCSV(strings.NewReader(input), now)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, name, res.Records[0].Name)
	assert.Equal(t, "Other", res.Records[0].Category)
}

func TestDecodeSubscriptionsCSV_InvalidUTF8Replaced(t *testing.T) {
	input := header +
		"\xff\xfe,B,Active,1,2025-01-01,O,C\n" +
		"Caf\xe9,Caf\xe9 Ltd,Active,2,2025-01-01,O,Food\n"

	res, err := DecodeSubscriptionsCSV(strings.NewReader(input), now)
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	assert.Equal(t, "\uFFFD", res.Records[0].Name)
	assert.Equal(t, "Caf\uFFFD", res.Records[1].Name)
	assert.Equal(t, "Caf\uFFFD Ltd", res.Records[1].Provider)
	for _, rec := range res.Records {
		assert.True(t, utf8.ValidString(rec.Name))
	}
	assert.Empty(t, res.Skipped)
}
