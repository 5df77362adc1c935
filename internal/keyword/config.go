package keyword

// 分词后端
const (
	BackendAuto      = "auto"
	BackendSegmenter = "segmenter"
	BackendFrequency = "frequency"
)

// DefaultTopicSeedLimit 话题识别默认取前 10 个关键词
const DefaultTopicSeedLimit = 10

// Config 关键词提取配置，停用词等均由调用方注入
type Config struct {
	Backend      string   `yaml:"backend"`
	StopWords    []string `yaml:"stop_words"`
	MinTermRunes int      `yaml:"min_term_runes"`
}

func DefaultConfig() Config {
	return Config{
		Backend:      BackendAuto,
		StopWords:    DefaultStopWords(),
		MinTermRunes: 2,
	}
}

// DefaultStopWords 中英文常见停用词
func DefaultStopWords() []string {
	return []string{
		// 中文
		"我们", "你们", "他们", "她们", "它们", "这个", "那个", "这些", "那些", "一个",
		"以及", "因为", "所以", "但是", "如果", "就是", "还是", "可以", "没有", "什么",
		"自己", "已经", "进行", "通过", "对于", "其中", "这样", "那么", "还有", "今天",
		"一些", "不是", "也是", "而且", "或者", "并且", "之后", "之前", "时候", "怎么",
		"这里", "那里", "目前", "表示", "认为", "成为", "由于", "虽然", "然后", "点击",
		"阅读", "原文", "关注", "公众号",
		// 英文
		"the", "and", "for", "are", "was", "were", "with", "that", "this", "from",
		"have", "has", "had", "but", "not", "you", "your", "our", "its", "they",
		"their", "will", "would", "can", "could", "been", "into", "about", "than",
		"then", "there", "what", "which", "who", "when", "where", "how", "also",
		"an", "as", "at", "be", "by", "in", "is", "it", "of", "on", "or", "to",
	}
}
