package preflight

import (
	"context"

	"handsfree/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll checks the configuration directory and each service socket.
func RunAll(ctx context.Context, dir string, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckDirectoryAccess("Config directory", dir, false)}
	for _, svc := range services(cfg.Base) {
		results = append(results, CheckSocket(ctx, svc.name, svc.addr))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

type service struct {
	name string
	addr string
}

func services(b config.BaseConfig) []service {
	return []service{
		{"Pose estimation (hpe_addr)", b.HPEAddr},
		{"Head detection (head_detection_addr)", b.HeadDetectionAddr},
		{"Gesture detection (gesture_detection_addr)", b.GestureDetectionAddr},
		{"Camera (picam_addr)", b.PicamAddr},
	}
}
