package pipeline

import "context"

// ContextualizeAll asks the summarizer once per ledger image, sequentially,
// with that image's translated texts in detection order.
func (o *implOrchestrator) ContextualizeAll(ctx context.Context) map[string]string {
	o.state = StateSummarizing

	files := o.ledger.Files()
	contexts := make(map[string]string, len(files))
	for i, file := range files {
		o.logger.Info(ctx, "[%d/%d] Contextualizing text: %s", i+1, len(files), file)

		summary, err := o.deps.Summarizer.Summarize(ctx, o.ledger.TranslatedTexts(file))
		if err != nil {
			o.logger.Error(ctx, "Failed to summarize %s: %v", file, err)
			o.fail(file, StageSummarize, err)
			continue
		}
		contexts[file] = summary
		o.report.Summarized++
	}

	o.state = StateDone
	return contexts
}
