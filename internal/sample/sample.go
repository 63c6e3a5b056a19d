// Package sample bundles diarized group-session transcripts for demos
// and tests, so the pipeline can be exercised without real session data.
package sample

// GroupSession is a full group check-in covering anxiety, caregiver
// burnout, emotional disconnection and work avoidance across five
// speakers.
const GroupSession = "SPEAKER_01: Welcome everyone to our group session today. I'd like to check in with each of you about how your week has been. Maya, would you like to start? " +
	"SPEAKER_03: I've been feeling really overwhelmed lately with work. The deadline pressure is intense, and I've started having trouble sleeping again. " +
	"SPEAKER_03: I wake up at 3 AM almost every night with my heart racing, thinking about all the things I haven't finished. " +
	"SPEAKER_03: My partner says I've been irritable and distant. He's trying to be supportive, but I just don't have the energy to connect right now. " +
	"SPEAKER_01: Thank you for sharing that, Maya. What do you notice in your body when you're feeling this way? " +
	"SPEAKER_03: My shoulders are always tight, and I get these tension headaches. Sometimes I feel like I can't breathe properly. " +
	"SPEAKER_03: I've been trying to use that breathing technique we talked about last session, but it's hard to remember when I'm in the middle of panicking. " +
	"SPEAKER_02: I can relate to that feeling of being overwhelmed. For me, it's my kids and my parents. I'm stretched so thin trying to care for everyone. " +
	"SPEAKER_02: Sometimes I fantasize about just getting in my car and driving away. Not forever, just for a little while to catch my breath. " +
	"SPEAKER_02: Then I feel terrible for even thinking that. What kind of mother thinks about leaving? " +
	"SPEAKER_01: That sounds like a lot of self-judgment, Sarah. We've talked about how those thoughts are actually quite common and don't reflect on your worth as a parent. " +
	"SPEAKER_00: I think I do the opposite. When things get too intense with my emotions, I just shut down. " +
	"SPEAKER_00: My wife Rachel keeps telling me that I never share what I'm feeling. She says it's like living with a robot sometimes. " +
	"SPEAKER_00: The truth is, I don't even know what I'm feeling half the time. It's just this emptiness. " +
	"SPEAKER_01: David, that disconnection from your emotions is something we've been working on. Have you tried that journaling exercise? " +
	"SPEAKER_00: I tried a couple times, but it feels pointless. I just stare at the blank page and nothing comes. " +
	"SPEAKER_00: It's easier to just focus on work or fixing things around the house. At least then I feel useful. " +
	"SPEAKER_04: I've been struggling with that too, David. After my divorce, I threw myself into my job. " +
	"SPEAKER_04: But last week, my daughter told me she feels like I don't have time for her anymore. That was a wake-up call. " +
	"SPEAKER_04: I realized I've been using work to avoid dealing with my feelings of failure about my marriage ending. " +
	"SPEAKER_01: That's an important insight, James. How did it feel to hear that from your daughter? " +
	"SPEAKER_04: Horrible. Like I was failing at being a father too. But also... I don't know, maybe grateful? " +
	"SPEAKER_04: It forced me to see what I've been doing. I actually took a day off work this week to take her hiking. We talked more than we have in months. " +
	"SPEAKER_03: How do you do that though? I feel like if I took a day off, the anxiety would be even worse. " +
	"SPEAKER_03: My self-worth is so tied to my productivity. If I'm not working, who am I even? " +
	"SPEAKER_02: I've been seeing this therapist individually who suggested I write down negative thoughts and challenge them. " +
	"SPEAKER_02: It helps sometimes, but other times the guilt is just too strong. " +
	"SPEAKER_01: Thank you for sharing that technique, Sarah. Maya, does that sound like something that might be helpful for your situation? " +
	"SPEAKER_03: Maybe. I just don't see how changing my thoughts fixes the fact that I have too much to do and not enough time. " +
	"SPEAKER_00: I tried medication for a while last year. The doctor said I have depression. " +
	"SPEAKER_00: It helped a little, but I hated the side effects. I stopped taking it after three months. " +
	"SPEAKER_00: Rachel doesn't know I stopped. She thinks I'm still on it. " +
	"SPEAKER_01: That sounds like an important piece of information you're keeping from your partner, David. What prevents you from telling her? " +
	"SPEAKER_00: She'll be disappointed. She thought the medication was helping our relationship. " +
	"SPEAKER_04: I've found that exercise helps me manage my stress better than anything else. " +
	"SPEAKER_04: When I'm running, it's the only time my brain shuts off from all the negative thoughts. " +
	"SPEAKER_02: My way of coping has been these little moments of connection with my kids. Like reading them bedtime stories. " +
	"SPEAKER_02: For those few minutes, I'm just present and nothing else matters. " +
	"SPEAKER_01: These are all important reflections on how you're managing difficult emotions and situations. For our remaining time today, I'd like to focus on one small step each of you might take this week."

// AnxietySession is a shorter transcript centered on a single panic
// episode.
const AnxietySession = "SPEAKER_01: Welcome everyone. Today I thought we could discuss how anxiety has been showing up in your lives this week. Who would like to start? " +
	"SPEAKER_02: I had a panic attack in the grocery store on Tuesday. It was so embarrassing. " +
	"SPEAKER_02: I was standing in the checkout line and suddenly felt like I couldn't breathe. My heart was racing and I got really dizzy. " +
	"SPEAKER_02: I abandoned my cart and just ran out to my car. Sat there for 30 minutes trying to calm down. " +
	"SPEAKER_01: That sounds really intense, Karen. What do you think triggered it? " +
	"SPEAKER_02: I'm not sure exactly. The store was crowded, and I started worrying that people were looking at me. " +
	"SPEAKER_02: Then I started thinking about all the things I needed to do this week, and it just snowballed from there. " +
	"SPEAKER_02: I've been avoiding going back since then, which is a problem because we need groceries."
