package platform

// DetectFor exposes detect for tests so profiles can be asserted for
// operating systems other than the test host's.
var DetectFor = detect
