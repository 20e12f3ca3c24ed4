package convert

// Quality is the operator-selected PDF optimization tier.
type Quality int

const (
	QualityStandard Quality = iota
	QualityMinimum
	QualityMaximum
)

// QualityNames lists the tiers in the order the GUI presents them.
var QualityNames = []string{"Minimum", "Standard", "Maximum"}

func (q Quality) String() string {
	switch q {
	case QualityMinimum:
		return "Minimum"
	case QualityMaximum:
		return "Maximum"
	default:
		return "Standard"
	}
}

// ParseQuality maps an operator-facing tier name to a Quality. Unrecognized
// input falls back to Standard rather than erroring.
func ParseQuality(name string) Quality {
	switch name {
	case "Minimum", "minimum":
		return QualityMinimum
	case "Maximum", "maximum":
		return QualityMaximum
	default:
		return QualityStandard
	}
}

// ExportHint is the optimization hint handed to the external application
// during PDF export. Value 0 selects the default optimization mode, 2 the
// smallest-file-size mode. Maximum fidelity passes no hint at all, which is
// why Set exists alongside Value.
type ExportHint struct {
	Set   bool
	Value int
}

const (
	hintStandard     = 0
	hintMinimizeSize = 2
)

// Hint returns the export hint for the tier: Minimum selects the
// smallest-file-size mode, Standard the default mode, and Maximum omits the
// hint entirely for highest fidelity.
func (q Quality) Hint() ExportHint {
	switch q {
	case QualityMinimum:
		return ExportHint{Set: true, Value: hintMinimizeSize}
	case QualityMaximum:
		return ExportHint{}
	default:
		return ExportHint{Set: true, Value: hintStandard}
	}
}

// FailureKind classifies a conversion failure.
type FailureKind int

const (
	FailureNone FailureKind = iota
	// FailureInputNotFound means the input path did not exist at request
	// time. The external application is never started for this case.
	FailureInputNotFound
	// FailureOutputNotWritable means the destination directory rejected the
	// write probe. The external application is never started for this case.
	FailureOutputNotWritable
	// FailureAutomation covers launch, open, export, and close errors
	// reported by the automation layer.
	FailureAutomation
	// FailureTimeout means the external application exceeded the configured
	// conversion deadline and was torn down.
	FailureTimeout
	// FailureUnknown covers anything else surfaced during the sequence.
	FailureUnknown
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "None"
	case FailureInputNotFound:
		return "InputNotFound"
	case FailureOutputNotWritable:
		return "OutputNotWritable"
	case FailureAutomation:
		return "AutomationFailure"
	case FailureTimeout:
		return "Timeout"
	default:
		return "UnknownFailure"
	}
}

// Request describes a single conversion.
type Request struct {
	InputPath  string
	OutputPath string
	Quality    Quality
}

// Outcome is the result of a conversion. ErrorDetail is non-empty exactly
// when Succeeded is false.
type Outcome struct {
	Succeeded   bool
	Kind        FailureKind
	ErrorDetail string
}

func success() Outcome {
	return Outcome{Succeeded: true, Kind: FailureNone}
}

func failure(kind FailureKind, detail string) Outcome {
	return Outcome{Succeeded: false, Kind: kind, ErrorDetail: detail}
}
