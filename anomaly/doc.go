// Package anomaly derives log-domain statistics from the adelic component
// map and flags deviation from the expected balance.
//
// 🚀 What does the detector compute?
//
//	Over the "1/p" components (natural logs, high precision):
//	  • LogSpectralStd  — population standard deviation of the log values
//	  • ExpectedStd     — root-mean-square of ln(p) over the prime list
//	  • ProductDeviation — |1 − real·p_adic| for the balanced components
//	and the advisory flag
//	  • QuantumAnomaly  — LogSpectralStd above the linear threshold
//	    ThresholdBase + ThresholdSlope·ExpectedStd, or ProductDeviation
//	    above DeviationTolerance
//
// ExpectedStd keeps its historical name: it is computed as an RMS of the
// log-primes, not as a statistical variance. The formula is part of the
// detector's contract and is intentionally left untouched.
//
// All statistics accumulate in the precision domain; the downcast to native
// float64 happens exactly once, when the Metrics record is packaged. The
// flag is advisory — detection never halts the pipeline.
//
// Errors:
//
//   - ErrNilIntegral      — nil input record
//   - ErrNoPrimes         — empty prime list inside the record
//   - ErrNoContributions  — a "1/p" component missing from the map
package anomaly
