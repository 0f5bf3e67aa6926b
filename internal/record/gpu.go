package record

// GPUFields are the columns reported for each GPU, positionally matching
// the nvidia-smi query below.
var GPUFields = FieldSet{
	"INDEX",
	"UTIL (%)",
	"TEMP (°C)",
	"USED (MiB)",
	"TOTAL (MiB)",
}

// GPUCommand returns the nvidia-smi invocation whose CSV output ParseGPU
// understands.
func GPUCommand() string {
	return "nvidia-smi " +
		"--format=csv,noheader,nounits " +
		"--query-gpu=" +
		"index," +
		"utilization.gpu," +
		"temperature.gpu," +
		"memory.used," +
		"memory.total"
}

// ParseGPU parses nvidia-smi CSV output into one record per GPU. A host
// without GPUs produces empty output and therefore zero records.
func ParseGPU(raw string) []Record {
	return ParseLines(raw, GPUFields)
}
