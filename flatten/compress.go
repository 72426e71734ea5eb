// SPDX-License-Identifier: MIT

package flatten

// CompressPulseHistory returns t_irr = n·p, the dwell-free limit of
// FlattenPulseHistory. There is no flux factor: compression keeps the flux
// at its nominal peak throughout.
func CompressPulseHistory(pulseLength float64, numPulses int) (float64, error) {
	if err := validatePulseLength(pulseLength); err != nil {
		return 0, err
	}
	if err := validateNumPulses(numPulses); err != nil {
		return 0, err
	}

	t := elapsed(pulseLength, numPulses, 0, false)
	if err := validateTIrr(t); err != nil {
		return 0, err
	}

	return t, nil
}

// CompressLevels folds CompressPulseHistory across nested levels, innermost
// first, each result becoming the next level's pulse length. The value is
// identical to FlattenAllLevels(pulseLength, numsPulses, zeros).TIrr.
func CompressLevels(pulseLength float64, numsPulses []int) (float64, error) {
	if err := validatePulseLength(pulseLength); err != nil {
		return 0, err
	}
	if len(numsPulses) == 0 {
		return 0, invalid(FieldLevels, 0)
	}

	t := pulseLength
	for i, n := range numsPulses {
		next, err := CompressPulseHistory(t, n)
		if err != nil {
			return 0, &LevelError{Level: i, Err: err}
		}
		t = next
	}

	return t, nil
}
