package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cases := []struct {
		name string
		opts []StartOption
		want StartMode
	}{
		{name: "default", want: ModeReport},
		{name: "report", opts: []StartOption{WithReportMode()}, want: ModeReport},
		{name: "watch", opts: []StartOption{WithWatchMode()}, want: ModeWatch},
		{name: "browse", opts: []StartOption{WithBrowseMode()}, want: ModeBrowse},
		{name: "last wins", opts: []StartOption{WithWatchMode(), WithBrowseMode()}, want: ModeBrowse},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := newStartConfig(tc.opts).mode; got != tc.want {
				t.Errorf("mode = %v, want %v", got, tc.want)
			}
		})
	}
}
