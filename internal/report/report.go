// Package report renders markdown reports for analysis, conversion and
// evaluation results.
package report

import (
	"fmt"
	"strings"

	"github.com/hanwenzhu/guwen/internal/analyzer"
	"github.com/hanwenzhu/guwen/internal/converter"
	"github.com/hanwenzhu/guwen/internal/corpus"
	"github.com/hanwenzhu/guwen/internal/evaluator"
	"github.com/hanwenzhu/guwen/internal/history"
	"github.com/hanwenzhu/guwen/internal/optimizer"
)

var deviceTitles = map[corpus.Device]string{
	corpus.DeviceSimile:      "比喻",
	corpus.DeviceParallelism: "排比",
	corpus.DeviceRepetition:  "反复",
	corpus.DeviceAntithesis:  "对偶",
}

// Analysis renders the feature vector of a text.
func Analysis(f analyzer.Features) string {
	var b strings.Builder
	b.WriteString("# 文体特征分析\n\n")

	b.WriteString("## 词汇\n\n")
	fmt.Fprintf(&b, "- 词汇总数: %d\n", f.Vocabulary.TotalWords)
	fmt.Fprintf(&b, "- 古典词汇: %d (%.1f%%)\n", f.Vocabulary.ClassicalCount, f.Vocabulary.ClassicalRatio*100)
	fmt.Fprintf(&b, "- 现代词汇: %d (%.1f%%)\n", f.Vocabulary.ModernCount, f.Vocabulary.ModernRatio*100)
	if len(f.Vocabulary.ModernDetected) > 0 {
		fmt.Fprintf(&b, "- 检出现代词: %s\n", strings.Join(f.Vocabulary.ModernDetected, "、"))
	}
	fmt.Fprintf(&b, "- 敬语使用: %d\n", f.Vocabulary.HonorificCount)

	b.WriteString("\n## 句式\n\n")
	fmt.Fprintf(&b, "- 句子数: %d, 平均长度 %.1f 字\n", f.Sentence.Count, f.Sentence.MeanLength)
	fmt.Fprintf(&b, "- 长句比例: %.1f%%, 短句比例: %.1f%%\n", f.Sentence.LongRatio*100, f.Sentence.ShortRatio*100)
	fmt.Fprintf(&b, "- 古典句式: %d 处 (每句 %.2f)\n", f.Sentence.PatternHits, f.Sentence.PatternRate)

	b.WriteString("\n## 修辞\n\n")
	for _, d := range corpus.Devices {
		if n := f.Rhetoric.Counts[d]; n > 0 {
			fmt.Fprintf(&b, "- %s: %d 处\n", deviceTitles[d], n)
		}
	}
	fmt.Fprintf(&b, "- 合计 %d 处, 每句 %.2f\n", f.Rhetoric.Total, f.RhetoricPerSentence())

	b.WriteString("\n## 综合\n\n")
	if f.AddressTerms.Role != "" {
		fmt.Fprintf(&b, "- 推断角色: %s (称谓正确 %d, 不当 %d)\n",
			f.AddressTerms.Role, f.AddressTerms.Correct, f.AddressTerms.Incorrect)
	}
	fmt.Fprintf(&b, "- 文学典雅度: %.2f\n", f.LiteraryElegance)
	fmt.Fprintf(&b, "- 古典真实度: %.2f\n", f.ClassicalAuthenticity)
	return b.String()
}

// Conversion renders a conversion trace.
func Conversion(res converter.Result) string {
	var b strings.Builder
	b.WriteString("# 文体转换结果\n\n")
	fmt.Fprintf(&b, "**原文**: %s\n\n", res.OriginalText)
	fmt.Fprintf(&b, "**转换**: %s\n\n", res.ConvertedText)
	fmt.Fprintf(&b, "质量评分 %.2f, 置信度 %.2f\n", res.QualityScore, res.ConfidenceScore)

	if len(res.Changes) > 0 {
		b.WriteString("\n## 词汇替换\n\n")
		for _, c := range res.Changes {
			fmt.Fprintf(&b, "- %s → %s\n", c.From, c.To)
		}
	}
	writeNotes(&b, "句式调整", res.RestructureNotes)
	writeNotes(&b, "修辞增强", res.RhetoricNotes)
	writeNotes(&b, "称谓修正", res.HonorificNotes)
	return b.String()
}

func writeNotes(b *strings.Builder, title string, notes []string) {
	if len(notes) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, n := range notes {
		fmt.Fprintf(b, "- %s\n", n)
	}
}

// Evaluation renders an evaluation report.
func Evaluation(r evaluator.Report) string {
	var b strings.Builder
	b.WriteString("# 风格相似度评估\n\n")
	fmt.Fprintf(&b, "**总分**: %.1f / 100 (%s)\n\n", r.Score.Total, r.Score.Grade)

	b.WriteString("| 维度 | 得分 |\n|------|------|\n")
	fmt.Fprintf(&b, "| 词汇相似度 | %.2f |\n", r.Score.VocabularySimilarity)
	fmt.Fprintf(&b, "| 句式相似度 | %.2f |\n", r.Score.SentenceSimilarity)
	fmt.Fprintf(&b, "| 修辞相似度 | %.2f |\n", r.Score.RhetoricSimilarity)
	fmt.Fprintf(&b, "| 称谓准确度 | %.2f |\n", r.Score.AddressingAccuracy)
	fmt.Fprintf(&b, "| 整体风格 | %.2f |\n", r.Score.OverallStyle)

	if len(r.Suggestions) > 0 {
		b.WriteString("\n## 改进建议\n\n")
		for _, s := range r.Suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	return b.String()
}

// ConversionEvaluation renders a before/after comparison.
func ConversionEvaluation(r evaluator.ConversionReport) string {
	var b strings.Builder
	b.WriteString("# 转换前后对比\n\n")
	fmt.Fprintf(&b, "- 转换前: %.1f (%s)\n", r.Before.Score.Total, r.Before.Score.Grade)
	fmt.Fprintf(&b, "- 转换后: %.1f (%s)\n", r.After.Score.Total, r.After.Score.Grade)
	fmt.Fprintf(&b, "- 提升: %+.1f\n", r.Delta)
	return b.String()
}

var strategyTitles = map[optimizer.Strategy]string{
	optimizer.StrategyVocabulary:    "词汇增强",
	optimizer.StrategySentence:      "句式重构",
	optimizer.StrategyRhetoric:      "修辞改进",
	optimizer.StrategyAddressing:    "称谓纠正",
	optimizer.StrategyComprehensive: "综合优化",
}

var statusTitles = map[optimizer.Status]string{
	optimizer.StatusTargetReached: "达到目标",
	optimizer.StatusImproved:      "有改进",
	optimizer.StatusNoImprovement: "无改进",
	optimizer.StatusMaxIterations: "达到最大轮次",
}

// Optimization renders an optimization session trace.
func Optimization(sess optimizer.Session) string {
	var b strings.Builder
	b.WriteString("# 文风优化结果\n\n")
	fmt.Fprintf(&b, "**原文**: %s\n\n", sess.OriginalText)
	fmt.Fprintf(&b, "**优化**: %s\n\n", sess.FinalText)
	fmt.Fprintf(&b, "评分 %.1f → %.1f (%+.1f), %s, 共 %d 轮\n",
		sess.InitialScore, sess.FinalScore, sess.Improvement,
		statusTitles[sess.Status], sess.Iterations)

	if len(sess.Steps) > 0 {
		b.WriteString("\n## 优化轮次\n\n")
		b.WriteString("| 轮次 | 策略 | 优化前 | 优化后 |\n|------|------|--------|--------|\n")
		for _, s := range sess.Steps {
			fmt.Fprintf(&b, "| %d | %s | %.1f | %.1f |\n",
				s.Iteration, strategyTitles[s.Strategy], s.BeforeScore, s.AfterScore)
		}
	}
	return b.String()
}

// Stats renders log statistics.
func Stats(conv history.ConversionStats, eval history.EvaluationStats) string {
	var b strings.Builder
	b.WriteString("# 历史统计\n\n")

	b.WriteString("## 转换\n\n")
	fmt.Fprintf(&b, "- 转换次数: %d\n", conv.Count)
	fmt.Fprintf(&b, "- 替换总数: %d\n", conv.TotalChanges)
	fmt.Fprintf(&b, "- 平均质量: %.2f, 平均置信度: %.2f\n", conv.MeanQuality, conv.MeanConfidence)

	b.WriteString("\n## 评估\n\n")
	fmt.Fprintf(&b, "- 评估次数: %d\n", eval.Count)
	if eval.Count > 0 {
		fmt.Fprintf(&b, "- 总分: 均值 %.1f, 标准差 %.1f, 区间 [%.1f, %.1f]\n",
			eval.Mean, eval.Std, eval.Min, eval.Max)
		for _, g := range []string{"A+", "A", "B+", "B", "C", "D"} {
			if n := eval.Grades[g]; n > 0 {
				fmt.Fprintf(&b, "- %s: %d\n", g, n)
			}
		}
	}
	return b.String()
}
