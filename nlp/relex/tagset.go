package relex

import (
	"relex/nlp/types"
	"relex/util"
)

// Default annotation inventories for the TACRED schema: Penn Treebank POS
// tags, CoreNLP entity types, and universal dependency relations as they
// appear in the distributed corpus. Each inventory can be replaced from a
// labels conf file; ids then follow file order.

var DefaultPOS = []string{
	"NNP", "NN", "IN", "DT", ",", "JJ", "NNS", "VBD", "CD", "CC", ".", "RB",
	"VBN", "PRP", "TO", "VB", "VBG", "VBZ", "PRP$", ":", "POS", "''", "``",
	"-RRB-", "-LRB-", "VBP", "MD", "NNPS", "WP", "WDT", "WRB", "RP", "JJR",
	"JJS", "$", "FW", "RBR", "SYM", "EX", "RBS", "WP$", "PDT", "LS", "UH", "#",
}

var DefaultNER = []string{
	"O", "PERSON", "ORGANIZATION", "LOCATION", "DATE", "NUMBER", "MISC",
	"DURATION", "MONEY", "PERCENT", "ORDINAL", "TIME", "SET", "EMAIL", "URL",
	"CITY", "STATE_OR_PROVINCE", "COUNTRY", "NATIONALITY", "RELIGION",
	"TITLE", "IDEOLOGY", "CRIMINAL_CHARGE", "CAUSE_OF_DEATH", "HANDLE",
}

var DefaultDepRel = []string{
	"punct", "compound", "case", "nmod", "det", "nsubj", "amod", "conj",
	"dobj", "ROOT", "cc", "nmod:poss", "mark", "advmod", "appos", "nummod",
	"dep", "ccomp", "aux", "advcl", "acl:relcl", "xcomp", "cop", "acl",
	"auxpass", "nsubjpass", "nmod:tmod", "neg", "nmod:npmod", "mwe",
	"parataxis", "root", "csubj", "expl", "iobj", "det:predet", "cc:preconj",
	"discourse", "csubjpass",
}

var DefaultLabels = []string{
	types.NO_RELATION,
	"per:title", "org:top_members/employees", "per:employee_of",
	"org:alternate_names", "org:country_of_headquarters",
	"per:countries_of_residence", "org:city_of_headquarters",
	"per:cities_of_residence", "per:age",
	"per:stateorprovinces_of_residence", "per:origin", "org:subsidiaries",
	"org:parents", "per:spouse", "org:stateorprovince_of_headquarters",
	"per:children", "per:other_family", "per:alternate_names",
	"org:members", "per:siblings", "per:schools_attended", "per:parents",
	"per:date_of_death", "org:member_of", "org:founded_by", "org:website",
	"per:cause_of_death", "org:political/religious_affiliation",
	"per:city_of_death", "org:shareholders",
	"org:number_of_employees/members", "per:date_of_birth", "org:founded",
	"per:city_of_birth", "per:charges", "per:stateorprovince_of_death",
	"per:religion", "per:stateorprovince_of_birth", "per:country_of_birth",
	"org:dissolved", "per:country_of_death",
}

// TagSets bundles the id spaces of the non-word annotation layers.
type TagSets struct {
	POS, NER, DepRel *util.EnumSet
	Label            *util.EnumSet
}

// NewTagEnum builds a frozen enumeration with padding and unknown ids in
// front of the given values.
func NewTagEnum(values []string) *util.EnumSet {
	e := util.NewEnumSet(len(values) + 2)
	e.Add(types.PAD_TOKEN)
	e.Add(types.UNK_TOKEN)
	for _, value := range values {
		e.Add(value)
	}
	e.Frozen = true
	return e
}

// NewLabelEnum builds a frozen relation label enumeration. The negative
// label is forced to id 0 whether or not the given list leads with it.
func NewLabelEnum(labels []string) *util.EnumSet {
	e := util.NewEnumSet(len(labels) + 1)
	e.Add(types.NO_RELATION)
	for _, label := range labels {
		e.Add(label)
	}
	e.Frozen = true
	return e
}

func DefaultTagSets() *TagSets {
	return &TagSets{
		POS:    NewTagEnum(DefaultPOS),
		NER:    NewTagEnum(DefaultNER),
		DepRel: NewTagEnum(DefaultDepRel),
		Label:  NewLabelEnum(DefaultLabels),
	}
}
