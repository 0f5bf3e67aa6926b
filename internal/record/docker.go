package record

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/christoph-blessing/sinzlab-tools/internal/dispatch"
)

// ContainerFields are the columns reported for each container. The names
// double as docker ps Go-template placeholders.
var ContainerFields = FieldSet{
	"ID",
	"Image",
	"Command",
	"RunningFor",
	"Status",
	"Ports",
	"Names",
}

// GPUField is the derived column appended to container listings, holding
// the value of NVIDIA_VISIBLE_DEVICES from the container's environment.
const GPUField = "GPU"

var nvidiaVisibleRe = regexp.MustCompile(`NVIDIA_VISIBLE_DEVICES=(all|\d+)`)

// ContainerTableFields returns the container columns plus the derived GPU
// column, in rendering order.
func ContainerTableFields() FieldSet {
	fields := make(FieldSet, 0, len(ContainerFields)+1)
	fields = append(fields, ContainerFields...)
	return append(fields, GPUField)
}

// PSOptions mirror the docker ps flags the CLI exposes.
type PSOptions struct {
	All     bool     // include stopped containers
	Filters []string // repeatable --filter expressions
	Last    int      // show the N most recently created containers
	Latest  bool     // show only the latest created container
}

// PSCommand builds the docker ps invocation whose output ParseContainers
// understands.
func PSCommand(opts PSOptions) string {
	placeholders := make([]string, len(ContainerFields))
	for i, field := range ContainerFields {
		placeholders[i] = "{{." + field + "}}"
	}

	parts := []string{fmt.Sprintf("docker ps --format %q", strings.Join(placeholders, delimiter))}
	if opts.All {
		parts = append(parts, "--all")
	}
	for _, filter := range opts.Filters {
		parts = append(parts, "--filter "+filter)
	}
	if opts.Last != 0 {
		parts = append(parts, fmt.Sprintf("--last %d", opts.Last))
	}
	if opts.Latest {
		parts = append(parts, "--latest")
	}
	return strings.Join(parts, " ")
}

// InspectCommand builds the docker inspect invocation used to read a
// container's environment.
func InspectCommand(containerID string) string {
	return `docker inspect --format "{{.Config.Env}}" ` + containerID
}

// ExtractGPU pulls the NVIDIA_VISIBLE_DEVICES value out of inspect output.
// Returns "all", a device index, or "" when the variable is absent.
func ExtractGPU(raw string) string {
	match := nvidiaVisibleRe.FindStringSubmatch(raw)
	if match == nil {
		return ""
	}
	return match[1]
}

// ParseContainers parses docker ps output into one record per container and
// augments each with the GPU field, obtained through a follow-up inspect
// call per row. Inspect calls run sequentially to keep row order stable; a
// failed inspect degrades to an empty GPU value, never an error.
func ParseContainers(ctx context.Context, runner dispatch.Runner, host, raw string) []Record {
	records := ParseLines(raw, ContainerFields)

	for i := range records {
		gpu := ""
		if id, ok := records[i].Get("ID"); ok && id != "" {
			result := runner.Run(ctx, host, InspectCommand(id))
			if !result.Failed() {
				gpu = ExtractGPU(string(result.Stdout))
			}
		}
		records[i].Set(GPUField, gpu)
	}
	return records
}
