// SPDX-License-Identifier: MIT

// Package schedule decodes a typed YAML description of an irradiation
// schedule and hands it to package flatten.
//
// The schema is explicit: every field has one name, unknown keys are
// rejected at decode time, and nothing is looked up by key prefix.
//
//	composition: nested          # nested (default) | additive
//	trailing_dwell: false        # charge dwell after inner trains
//	entries:                     # nested mode
//	  - name: campaign-1
//	    pulse_length: 2          # innermost pulse length
//	    levels:                  # innermost first
//	      - {num_pulses: 2, dwell_time: 2}
//	      - {num_pulses: 2, dwell_time: 2}
//	    dwell_after: 2           # gap before the next entry
//	blocks:                      # additive mode
//	  - {pulse_length: 2, num_pulses: 2, dwell_time: 2}
//
// Usage:
//
//	d, err := schedule.Load("iter.yaml")
//	if err != nil { ... }
//	res, err := d.Flatten()
package schedule
