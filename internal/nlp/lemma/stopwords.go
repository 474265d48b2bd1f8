package lemma

// englishStopWords follows the common English stop list used by NLP toolkits, plus the
// fragments left behind when contractions are split on the apostrophe.
var englishStopWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "across": {}, "after": {}, "afterwards": {}, "again": {},
	"against": {}, "all": {}, "almost": {}, "alone": {}, "along": {}, "already": {}, "also": {},
	"although": {}, "always": {}, "am": {}, "among": {}, "amongst": {}, "amount": {}, "an": {},
	"and": {}, "another": {}, "any": {}, "anyhow": {}, "anyone": {}, "anything": {}, "anyway": {},
	"anywhere": {}, "are": {}, "aren": {}, "around": {}, "as": {}, "at": {}, "back": {}, "be": {},
	"became": {}, "because": {}, "become": {}, "becomes": {}, "becoming": {}, "been": {},
	"before": {}, "beforehand": {}, "behind": {}, "being": {}, "below": {}, "beside": {},
	"besides": {}, "between": {}, "beyond": {}, "both": {}, "bottom": {}, "but": {}, "by": {},
	"ca": {}, "call": {}, "can": {}, "cannot": {}, "could": {}, "couldn": {}, "d": {}, "did": {},
	"didn": {}, "do": {}, "does": {}, "doesn": {}, "doing": {}, "don": {}, "done": {}, "down": {},
	"due": {}, "during": {}, "each": {}, "either": {}, "else": {}, "elsewhere": {}, "empty": {},
	"enough": {}, "even": {}, "ever": {}, "every": {}, "everyone": {}, "everything": {},
	"everywhere": {}, "except": {}, "few": {}, "first": {}, "for": {}, "former": {},
	"formerly": {}, "from": {}, "front": {}, "full": {}, "further": {}, "get": {}, "give": {},
	"go": {}, "had": {}, "has": {}, "have": {}, "he": {}, "hence": {}, "her": {}, "here": {},
	"hereafter": {}, "hereby": {}, "herein": {}, "hereupon": {}, "hers": {}, "herself": {},
	"him": {}, "himself": {}, "his": {}, "how": {}, "however": {}, "i": {}, "if": {}, "in": {},
	"indeed": {}, "into": {}, "is": {}, "isn": {}, "it": {}, "its": {}, "itself": {}, "just": {},
	"keep": {}, "last": {}, "latter": {}, "latterly": {}, "least": {}, "less": {}, "ll": {},
	"m": {}, "made": {}, "make": {}, "many": {}, "may": {}, "me": {}, "meanwhile": {},
	"might": {}, "mine": {}, "more": {}, "moreover": {}, "most": {}, "mostly": {}, "move": {},
	"much": {}, "must": {}, "my": {}, "myself": {}, "n't": {}, "name": {}, "namely": {},
	"neither": {}, "never": {}, "nevertheless": {}, "next": {}, "no": {}, "nobody": {},
	"none": {}, "noone": {}, "nor": {}, "not": {}, "nothing": {}, "now": {}, "nowhere": {},
	"nt": {}, "of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {}, "only": {},
	"onto": {}, "or": {}, "other": {}, "others": {}, "otherwise": {}, "our": {}, "ours": {},
	"ourselves": {}, "out": {}, "over": {}, "own": {}, "part": {}, "per": {}, "perhaps": {},
	"please": {}, "put": {}, "quite": {}, "rather": {}, "re": {}, "really": {}, "regarding": {},
	"s": {}, "same": {}, "say": {}, "see": {}, "seem": {}, "seemed": {}, "seeming": {},
	"seems": {}, "serious": {}, "several": {}, "she": {}, "should": {}, "shouldn": {}, "show": {},
	"side": {}, "since": {}, "so": {}, "some": {}, "somehow": {}, "someone": {}, "something": {},
	"sometime": {}, "sometimes": {}, "somewhere": {}, "still": {}, "such": {}, "t": {},
	"take": {}, "than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "themselves": {},
	"then": {}, "thence": {}, "there": {}, "thereafter": {}, "thereby": {}, "therefore": {},
	"therein": {}, "thereupon": {}, "these": {}, "they": {}, "third": {}, "this": {}, "those": {},
	"though": {}, "through": {}, "throughout": {}, "thru": {}, "thus": {}, "to": {},
	"together": {}, "too": {}, "top": {}, "toward": {}, "towards": {}, "under": {}, "unless": {},
	"until": {}, "up": {}, "upon": {}, "us": {}, "used": {}, "using": {}, "various": {}, "ve": {},
	"very": {}, "via": {}, "was": {}, "wasn": {}, "we": {}, "well": {}, "were": {}, "weren": {},
	"what": {}, "whatever": {}, "when": {}, "whence": {}, "whenever": {}, "where": {},
	"whereafter": {}, "whereas": {}, "whereby": {}, "wherein": {}, "whereupon": {},
	"wherever": {}, "whether": {}, "which": {}, "while": {}, "whither": {}, "who": {},
	"whoever": {}, "whole": {}, "whom": {}, "whose": {}, "why": {}, "will": {}, "with": {},
	"within": {}, "without": {}, "won": {}, "would": {}, "wouldn": {}, "yet": {}, "you": {},
	"your": {}, "yours": {}, "yourself": {}, "yourselves": {},
}

// IsStopWord reports whether the folded word is on the English stop list.
func IsStopWord(word string) bool {
	_, ok := englishStopWords[word]
	return ok
}
