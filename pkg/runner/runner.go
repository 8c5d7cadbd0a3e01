package runner

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/coltonb-mixpanel/import-sorter/pkg/errors"
	"github.com/coltonb-mixpanel/import-sorter/pkg/records"
	"github.com/coltonb-mixpanel/import-sorter/pkg/sorter"
	"github.com/coltonb-mixpanel/import-sorter/pkg/utils"
)

// RunnerConfig describes how to process one invocation's record files.
type RunnerConfig struct {
	Options     sorter.Options // validated sorting options shared by all groups of the run
	InPlace     bool           // rewrite each record file instead of printing to Out
	SourcesOnly bool           // emit only the ordered module specifiers, one per line
	Out         io.Writer      // result destination, defaults to os.Stdout
	Logger      *zap.Logger    // diagnostics, defaults to a no-op logger
}

// runner handles decoding, sorting, and emitting record groups
type runner struct {
	config RunnerConfig
}

// New creates a new Runner with the specified configuration
func New(config RunnerConfig) *runner {
	if config.Out == nil {
		config.Out = os.Stdout
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &runner{config: config}
}

// sortGroup runs the core sorter over one decoded group.
func (r *runner) sortGroup(imports []sorter.Import) []sorter.Import {
	return sorter.Sort(imports, r.config.Options)
}

// emit writes one sorted group to the configured destination.
func (r *runner) emit(imports []sorter.Import) error {
	if r.config.SourcesOnly {
		for _, source := range records.Sources(imports) {
			fmt.Fprintln(r.config.Out, source)
		}
		return nil
	}

	output, err := records.Encode(imports)
	if err != nil {
		return err
	}
	_, err = r.config.Out.Write(output)
	return err
}

// ProcessFile reads one record file (or stdin), sorts its group, and either
// rewrites the file in place or emits the result.
func (r *runner) ProcessFile(path string) error {
	src, err := utils.ReadInput(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadRecords, err)
	}

	imports, err := records.Decode(src)
	if err != nil {
		return err
	}

	sorted := r.sortGroup(imports)
	r.config.Logger.Debug("sorted group",
		zap.String("path", path),
		zap.Int("records", len(sorted)),
		zap.Bool("namespaceFirst", r.config.Options.NamespaceFirst),
		zap.String("lengthMode", r.config.Options.LengthMode.String()))

	if r.config.InPlace && path != utils.StdinPath {
		output, err := records.Encode(sorted)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, output, 0644); err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteRecords, err)
		}
		return nil
	}

	return r.emit(sorted)
}

// ProcessFiles processes multiple record files, each as an independent group
func (r *runner) ProcessFiles(filePaths []string) error {
	processedCount := 0
	errorCount := 0

	for _, filePath := range filePaths {
		if err := r.ProcessFile(filePath); err != nil {
			fmt.Fprintf(r.config.Out, errors.InfoMsgErrorProcessing+"\n", filePath, err)
			errorCount++
		} else {
			processedCount++
			if r.config.InPlace {
				fmt.Fprintf(r.config.Out, errors.InfoMsgProcessedFiles+"\n", filePath)
			}
		}
	}

	fmt.Fprintf(r.config.Out, errors.InfoMsgProcessedCount, processedCount)
	if errorCount > 0 {
		fmt.Fprintf(r.config.Out, errors.InfoMsgErrorCount, errorCount)
	}
	fmt.Fprintln(r.config.Out)

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	return nil
}

// ProcessPath processes a record file, a directory of record files, or stdin
func (r *runner) ProcessPath(path string) error {
	if path == utils.StdinPath {
		return r.ProcessFile(path)
	}

	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		return r.ProcessFile(path)
	}

	// When processing directories, in-place mode is recommended
	if !r.config.InPlace {
		fmt.Fprintf(r.config.Out, errors.WarnMsgProcessingDirWithoutInPlace+"\n")
		fmt.Fprintf(r.config.Out, errors.InfoMsgUseInPlaceFlag+"\n\n")
	}

	recordFiles, err := utils.FindRecordFiles(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindRecordFiles, err)
	}

	if len(recordFiles) == 0 {
		fmt.Fprintf(r.config.Out, errors.InfoMsgNoRecordFilesFound+"\n", path)
		return nil
	}

	fmt.Fprintf(r.config.Out, errors.InfoMsgFoundRecordFiles+"\n\n", len(recordFiles), path)
	return r.ProcessFiles(recordFiles)
}
