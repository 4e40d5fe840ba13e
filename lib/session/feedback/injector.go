package feedbackinjector

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	feedbackcatalog "interview-trainer-backend/lib/feedback-catalog"
	feedbackapimodels "interview-trainer-backend/models/api/feedback"
	interviewapimodels "interview-trainer-backend/models/api/interview"
)

// Flags is the shared session state the generators are gated on; the
// orchestrator owns the values, the injector only reads snapshots.
type Flags interface {
	HRSpeaking() bool
	UserSpeaking() bool
	Paused() bool
	Streaming() bool
	QuestionElapsed() int
	QuestionIndex() int
}

const (
	ChannelVerbal    = "verbal"
	ChannelNonVerbal = "non_verbal"
)

const (
	defaultVerbalInterval    = 4000 * time.Millisecond
	defaultNonVerbalInterval = 5000 * time.Millisecond
)

// Injector runs the two timer-driven feedback generators plus the keyword
// trigger, appending into per-question lists that the orchestrator submits
// with the answer. Both lists and all pending timers are cleared on every
// question transition.
type Injector struct {
	mu sync.Mutex

	catalog feedbackcatalog.Provider
	flags   Flags
	rng     *rand.Rand

	verbal    []interviewapimodels.FeedbackItem
	nonVerbal []interviewapimodels.FeedbackItem

	usedVerbal    map[int]bool
	usedNonVerbal map[int]bool

	specialIndex *int

	verbalInterval    time.Duration
	nonVerbalInterval time.Duration

	stopCh chan struct{}

	onInject func(item interviewapimodels.FeedbackItem, channel string)
}

type Option func(*Injector)

// WithIntervals shortens the generator periods in tests.
func WithIntervals(verbal, nonVerbal time.Duration) Option {
	return func(i *Injector) {
		i.verbalInterval = verbal
		i.nonVerbalInterval = nonVerbal
	}
}

// WithSpecialQuestionIndex routes the non-verbal pick of one question
// through the polarity lists instead of the general catalog.
func WithSpecialQuestionIndex(idx *int) Option {
	return func(i *Injector) {
		i.specialIndex = idx
	}
}

func WithInjectListener(fn func(item interviewapimodels.FeedbackItem, channel string)) Option {
	return func(i *Injector) {
		i.onInject = fn
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(i *Injector) {
		i.rng = rng
	}
}

func NewInjector(catalog feedbackcatalog.Provider, flags Flags, opts ...Option) *Injector {
	inj := &Injector{
		catalog:           catalog,
		flags:             flags,
		rng:               rand.New(rand.NewSource(time.Now().UnixNano())),
		usedVerbal:        map[int]bool{},
		usedNonVerbal:     map[int]bool{},
		verbalInterval:    defaultVerbalInterval,
		nonVerbalInterval: defaultNonVerbalInterval,
	}
	for _, opt := range opts {
		opt(inj)
	}
	return inj
}

// Start launches both generators; stop with Stop.
func (i *Injector) Start() {
	i.mu.Lock()
	if i.stopCh != nil {
		i.mu.Unlock()
		return
	}
	stopCh := make(chan struct{})
	i.stopCh = stopCh
	i.mu.Unlock()
	go i.runTicker(i.verbalInterval, stopCh, i.verbalTick)
	go i.runTicker(i.nonVerbalInterval, stopCh, i.nonVerbalTick)
}

func (i *Injector) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.stopCh == nil {
		return
	}
	close(i.stopCh)
	i.stopCh = nil
}

func (i *Injector) runTicker(interval time.Duration, stopCh chan struct{}, tick func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			tick()
		}
	}
}

func (i *Injector) verbalTick() {
	if i.flags.HRSpeaking() || !i.flags.UserSpeaking() || i.flags.Paused() {
		return
	}
	seconds := clampOffset(i.flags.QuestionElapsed())
	i.mu.Lock()
	entry, ok := i.pickVerbalLocked()
	if !ok {
		i.mu.Unlock()
		return
	}
	item := i.appendLocked(entry.Text, entry.IsPositive, ChannelVerbal, seconds)
	onInject := i.onInject
	i.mu.Unlock()
	if onInject != nil {
		onInject(item, ChannelVerbal)
	}
}

func (i *Injector) nonVerbalTick() {
	if i.flags.Paused() || !i.flags.Streaming() || i.flags.HRSpeaking() {
		return
	}
	seconds := clampOffset(i.flags.QuestionElapsed())
	questionIndex := i.flags.QuestionIndex()
	i.mu.Lock()
	var text string
	var isPositive int
	var ok bool
	if i.specialIndex != nil && questionIndex == *i.specialIndex {
		text, isPositive, ok = i.pickPolarityLocked()
	} else {
		text, isPositive, ok = i.pickNonVerbalLocked()
	}
	if !ok {
		i.mu.Unlock()
		return
	}
	item := i.appendLocked(text, isPositive, ChannelNonVerbal, seconds)
	onInject := i.onInject
	i.mu.Unlock()
	if onInject != nil {
		onInject(item, ChannelNonVerbal)
	}
}

// OnSentence fires the keyword trigger: the last word of a completed
// sentence, matched exactly and case-insensitively.
func (i *Injector) OnSentence(sentence string) {
	words := strings.Fields(strings.TrimRight(strings.TrimSpace(sentence), ".!?"))
	if len(words) == 0 {
		return
	}
	lastWord := strings.Trim(words[len(words)-1], ".,!?;:")
	entry := i.catalog.FindVerbalByWord(lastWord)
	if entry == nil {
		return
	}
	seconds := clampOffset(i.flags.QuestionElapsed())
	i.mu.Lock()
	i.usedVerbal[entry.ID] = true
	item := i.appendLocked(entry.Text, entry.IsPositive, ChannelVerbal, seconds)
	onInject := i.onInject
	i.mu.Unlock()
	if onInject != nil {
		onInject(item, ChannelVerbal)
	}
}

func (i *Injector) pickVerbalLocked() (feedbackapimodels.VerbalEntry, bool) {
	var candidates []feedbackapimodels.VerbalEntry
	for _, entry := range i.catalog.GetVerbal() {
		if !i.usedVerbal[entry.ID] {
			candidates = append(candidates, entry)
		}
	}
	if len(candidates) == 0 {
		return feedbackapimodels.VerbalEntry{}, false
	}
	entry := candidates[i.rng.Intn(len(candidates))]
	i.usedVerbal[entry.ID] = true
	return entry, true
}

func (i *Injector) pickNonVerbalLocked() (string, int, bool) {
	var candidates []feedbackapimodels.NonVerbalEntry
	for _, entry := range i.catalog.GetNonVerbal() {
		if !i.usedNonVerbal[entry.ID] {
			candidates = append(candidates, entry)
		}
	}
	if len(candidates) == 0 {
		return "", 0, false
	}
	entry := candidates[i.rng.Intn(len(candidates))]
	i.usedNonVerbal[entry.ID] = true
	return entry.Text, entry.IsPositive, true
}

// pickPolarityLocked keys the pick on the most recent verbal entry; with
// no verbal feedback yet the negative list is used.
func (i *Injector) pickPolarityLocked() (string, int, bool) {
	positive := false
	if len(i.verbal) != 0 {
		positive = i.verbal[len(i.verbal)-1].IsPositive == 1
	}
	list := i.catalog.GetNonVerbalByPolarity(positive)
	if len(list) == 0 {
		return "", 0, false
	}
	entry := list[i.rng.Intn(len(list))]
	return entry.Text, entry.IsPositive, true
}

// appendLocked takes the precomputed time offset so the shared flags are
// never read under the injector lock.
func (i *Injector) appendLocked(text string, isPositive int, channel string, seconds int) interviewapimodels.FeedbackItem {
	item := interviewapimodels.FeedbackItem{
		Text:       text,
		IsPositive: isPositive,
		Seconds:    seconds,
	}
	if channel == ChannelVerbal {
		item.Type = 0
		item.ID = len(i.verbal) + 1
		i.verbal = append(i.verbal, item)
	} else {
		item.Type = 1
		item.ID = len(i.nonVerbal) + 1
		i.nonVerbal = append(i.nonVerbal, item)
	}
	return item
}

// Verbal returns a snapshot of the accumulated verbal list.
func (i *Injector) Verbal() []interviewapimodels.FeedbackItem {
	i.mu.Lock()
	defer i.mu.Unlock()
	result := make([]interviewapimodels.FeedbackItem, len(i.verbal))
	copy(result, i.verbal)
	return result
}

func (i *Injector) NonVerbal() []interviewapimodels.FeedbackItem {
	i.mu.Lock()
	defer i.mu.Unlock()
	result := make([]interviewapimodels.FeedbackItem, len(i.nonVerbal))
	copy(result, i.nonVerbal)
	return result
}

// Clear resets both lists and the exhaustion sets for the next question.
func (i *Injector) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.verbal = nil
	i.nonVerbal = nil
	i.usedVerbal = map[int]bool{}
	i.usedNonVerbal = map[int]bool{}
}

func clampOffset(elapsed int) int {
	offset := elapsed - 5
	if offset < 0 {
		return 0
	}
	return offset
}
