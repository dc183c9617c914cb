package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Nguyễn Văn An", "Nguyen Van An"},
		{"Trần Thị Bình", "Tran Thi Binh"},
		{"Điểm Đạt được", "Diem Dat duoc"},
		{"Học kì I", "Hoc ki I"},
		{"plain ascii 123", "plain ascii 123"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Transliterate(tc.in), tc.in)
	}
}
