// meta/meta.go
package meta

// EPISODES defines the default number of Monte Carlo episodes per run.
const EPISODES = 500000

// SEED defines the default seed of the random stream.
const SEED = 1

// STICK defines the default threshold of the fixed evaluation policy.
const STICK = 17

// PROGRESS defines how many episodes pass between progress log lines.
const PROGRESS = 100000

// BANDITS defines the default number of independent bandit tasks.
const BANDITS = 2000

// ARMS defines the default number of arms per bandit.
const ARMS = 10

// PLAYS defines the default number of plays per bandit task.
const PLAYS = 1000
